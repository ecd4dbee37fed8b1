package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"messhall/internal/models/db_models"
	"messhall/pkg/utils"
)

type AccountRepository interface {
	// InsertWithNextID assigns the next STU### id and inserts the account.
	InsertWithNextID(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	List(ctx context.Context) ([]db_models.Account, error)
	// Delete removes the account with its complaints and payments. It reports
	// whether an account was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// WithLock loads the account under a row lock, runs fn inside the same
	// transaction and saves the account if fn succeeds. Nothing is written
	// when fn returns an error. Missing accounts yield utils.ErrAccountNotFound.
	WithLock(ctx context.Context, id string, fn func(tx *gorm.DB, account *db_models.Account) error) (*db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func FormatStudentID(seq int64) string {
	return fmt.Sprintf("STU%03d", seq)
}

func (a *accountRepository) InsertWithNextID(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq := db_models.IDSequence{Name: db_models.AccountSequence}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", db_models.AccountSequence).
			FirstOrCreate(&seq, db_models.IDSequence{Name: db_models.AccountSequence, Value: 0}).Error
		if err != nil {
			return fmt.Errorf("lock account sequence: %w", err)
		}

		seq.Value++
		if err := tx.Model(&db_models.IDSequence{}).
			Where("name = ?", seq.Name).
			Update("value", seq.Value).Error; err != nil {
			return fmt.Errorf("advance account sequence: %w", err)
		}

		account.ID = FormatStudentID(seq.Value)
		return tx.Omit(clause.Associations).Create(account).Error
	})
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) List(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&db_models.Complaint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&db_models.Payment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&db_models.Account{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		return nil
	})
	return removed, err
}

func (a *accountRepository) WithLock(ctx context.Context, id string, fn func(tx *gorm.DB, account *db_models.Account) error) (*db_models.Account, error) {
	var account db_models.Account

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrAccountNotFound
			}
			return fmt.Errorf("lock account: %w", err)
		}

		if err := fn(tx, &account); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(&account).Error
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}
