package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"messhall/internal/config"
	"messhall/internal/models/db_models"
)

func plain(p string) (string, error) { return p, nil }

func TestSeedDemoAccounts(t *testing.T) {
	db, err := OpenDatabase(config.DatabaseConfig{Driver: "sqlite", DSN: "file:seed_demo?mode=memory&cache=shared"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { CloseDatabase(db, zap.NewNop()) })
	ctx := context.Background()

	require.NoError(t, SeedDemoAccounts(ctx, db, plain, zap.NewNop()))
	require.NoError(t, SeedDemoAccounts(ctx, db, plain, zap.NewNop()))

	var accounts []db_models.Account
	require.NoError(t, db.Order("id").Find(&accounts).Error)
	require.Len(t, accounts, 2)

	rajesh := accounts[0]
	assert.Equal(t, "STU001", rajesh.ID)
	assert.Equal(t, "Rajesh Kumar", rajesh.Name)
	assert.Equal(t, "A-101", rajesh.Room)
	assert.True(t, rajesh.Breakfast)
	assert.True(t, rajesh.Lunch)
	assert.False(t, rajesh.Dinner)
	assert.Equal(t, 45, rajesh.TokenBalance)
	assert.Equal(t, int64(5400), rajesh.TotalSpent)
	assert.Equal(t, "1234", rajesh.Password)

	priya := accounts[1]
	assert.Equal(t, "STU002", priya.ID)
	assert.True(t, priya.HasSubscription())
	assert.True(t, priya.Dinner)
	assert.Equal(t, 72, priya.TokenBalance)

	for _, a := range accounts {
		var payments []db_models.Payment
		require.NoError(t, db.Where("account_id = ?", a.ID).Find(&payments).Error)
		require.NotEmpty(t, payments, a.ID)

		var sum int64
		for _, p := range payments {
			sum += p.Amount
			assert.Equal(t, db_models.PaymentStatusCompleted, p.Status)
		}
		assert.Equal(t, a.TotalSpent, sum, a.ID)
	}

	var seq db_models.IDSequence
	require.NoError(t, db.First(&seq, "name = ?", db_models.AccountSequence).Error)
	assert.Equal(t, int64(2), seq.Value)
}

func TestSeedSkipsUsedSequence(t *testing.T) {
	db, err := OpenDatabase(config.DatabaseConfig{Driver: "sqlite", DSN: "file:seed_skip?mode=memory&cache=shared"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { CloseDatabase(db, zap.NewNop()) })

	require.NoError(t, db.Model(&db_models.IDSequence{}).
		Where("name = ?", db_models.AccountSequence).
		Update("value", 7).Error)

	require.NoError(t, SeedDemoAccounts(context.Background(), db, plain, zap.NewNop()))

	var n int64
	require.NoError(t, db.Model(&db_models.Account{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestOpenDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDatabase(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, zap.NewNop())
	assert.Error(t, err)
}
