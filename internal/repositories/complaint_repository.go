package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"messhall/internal/models/db_models"
	"messhall/pkg/utils"
)

type ComplaintRepositoryInterface interface {
	CreateComplaint(ctx context.Context, complaint *db_models.Complaint) error
	// ListByAccount returns complaints in filing order.
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Complaint, error)
	// ListAll returns complaints of every account, newest first, optionally
	// filtered by status.
	ListAll(ctx context.Context, status db_models.ComplaintStatus) ([]db_models.Complaint, error)
	// UpdateLocked loads the account's complaint under a row lock and saves it
	// after fn succeeds. Missing rows yield utils.ErrComplaintNotFound.
	UpdateLocked(ctx context.Context, accountID, complaintID string, fn func(complaint *db_models.Complaint) error) (*db_models.Complaint, error)
}

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) CreateComplaint(ctx context.Context, complaint *db_models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *ComplaintRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Complaint, error) {
	var complaints []db_models.Complaint
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) ListAll(ctx context.Context, status db_models.ComplaintStatus) ([]db_models.Complaint, error) {
	var complaints []db_models.Complaint

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) UpdateLocked(ctx context.Context, accountID, complaintID string, fn func(complaint *db_models.Complaint) error) (*db_models.Complaint, error) {
	id, err := uuid.Parse(complaintID)
	if err != nil {
		return nil, utils.ErrComplaintNotFound
	}

	var complaint db_models.Complaint
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND account_id = ?", id, accountID).
			First(&complaint).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrComplaintNotFound
			}
			return fmt.Errorf("lock complaint: %w", err)
		}

		if err := fn(&complaint); err != nil {
			return err
		}
		return tx.Save(&complaint).Error
	})
	if err != nil {
		return nil, err
	}

	return &complaint, nil
}
