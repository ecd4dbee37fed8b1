package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messhall/internal/models/db_models"
	"messhall/pkg/utils"
)

func TestAdjustTokensClamps(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	student := f.student(t, "Clamp Target", 10)

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"credit", 15, 25},
		{"debit", -5, 20},
		{"exact zero", -20, 0},
		{"below zero", -3, 0},
		{"huge debit", math.MinInt32, 0},
		{"credit after clamp", 4, 4},
	}

	for _, tt := range tests {
		account, err := f.admin.AdjustTokens(ctx, student.ID, tt.delta)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, account.TokenBalance, tt.name)
		assert.Equal(t, tt.want, f.reload(t, student.ID).TokenBalance, tt.name)
	}

	_, err := f.admin.AdjustTokens(ctx, "STU404", 5)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestAdjustTokensRejectsOverflow(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	student := f.student(t, "Overflow Target", 5)

	_, err := f.admin.AdjustTokens(ctx, student.ID, math.MaxInt)
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, 5, f.reload(t, student.ID).TokenBalance)

	_, err = f.admin.AdjustTokens(ctx, student.ID, MaxTokenBalance-4)
	require.ErrorIs(t, err, utils.ErrValidation)

	account, err := f.admin.AdjustTokens(ctx, student.ID, MaxTokenBalance-5)
	require.NoError(t, err)
	assert.Equal(t, MaxTokenBalance, account.TokenBalance)

	account, err = f.admin.AdjustTokens(ctx, student.ID, math.MinInt)
	require.NoError(t, err)
	assert.Zero(t, account.TokenBalance)
}

func TestSetRoom(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	student := f.student(t, "Room Mover", 0)

	account, err := f.admin.SetRoom(ctx, student.ID, "  C-310 ")
	require.NoError(t, err)
	assert.Equal(t, "C-310", account.Room)

	_, err = f.admin.SetRoom(ctx, student.ID, "   ")
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "C-310", f.reload(t, student.ID).Room)

	_, err = f.admin.SetRoom(ctx, "STU404", "A-101")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRemoveAccountKeepsIDsUnique(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()

	first, err := f.admin.AddAccount(ctx, "First", "first@college.com", "pw")
	require.NoError(t, err)
	second, err := f.admin.AddAccount(ctx, "Second", "second@college.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "STU001", first.ID)
	assert.Equal(t, "STU002", second.ID)

	_, err = f.complaints.FileComplaint(ctx, first.ID, db_models.CategoryOther, "Bye", "Leaving")
	require.NoError(t, err)
	_, err = f.topups.TopUp(ctx, first.ID, 500, db_models.MethodUPI)
	require.NoError(t, err)

	require.NoError(t, f.admin.RemoveAccount(ctx, first.ID))
	require.ErrorIs(t, f.admin.RemoveAccount(ctx, first.ID), utils.ErrNotFound)

	_, err = f.accounts.FindByID(ctx, first.ID)
	require.ErrorIs(t, err, utils.ErrNotFound)

	var orphans int64
	require.NoError(t, f.db.Model(&db_models.Payment{}).Where("account_id = ?", first.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	require.NoError(t, f.db.Model(&db_models.Complaint{}).Where("account_id = ?", first.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	third, err := f.admin.AddAccount(ctx, "Third", "third@college.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "STU003", third.ID)

	accounts, err := f.accounts.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "STU002", accounts[0].ID)
	assert.Equal(t, "STU003", accounts[1].ID)
}

func TestToggleMealLockKeepsFlags(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	student := f.student(t, "Flag Keeper", 3, db_models.MealBreakfast, db_models.MealDinner)

	assert.True(t, f.admin.ToggleMealLock())

	after := f.reload(t, student.ID)
	assert.True(t, after.Breakfast)
	assert.False(t, after.Lunch)
	assert.True(t, after.Dinner)
	assert.Equal(t, 3, after.TokenBalance)
}

func TestAdminLogin(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})

	token, err := f.admin.Login("admin123")
	require.NoError(t, err)

	claims, err := utils.NewTokenIssuer("test-secret", 0).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Subject)

	_, err = f.admin.Login("admin")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
