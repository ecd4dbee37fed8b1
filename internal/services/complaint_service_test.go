package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messhall/internal/models/db_models"
	"messhall/pkg/utils"
)

func TestComplaintLifecycle(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	student := f.student(t, "Ravi Menon", 0)

	_, err := f.complaints.FileComplaint(ctx, student.ID, db_models.CategoryFoodQuality, "  ", "Rice was cold")
	require.ErrorIs(t, err, utils.ErrValidation)

	complaint, err := f.complaints.FileComplaint(ctx, student.ID, db_models.CategoryFoodQuality, "Cold lunch", "Rice was cold")
	require.NoError(t, err)
	assert.Equal(t, db_models.ComplaintPending, complaint.Status)
	assert.NotEqual(t, uuid.Nil, complaint.ID)
	assert.False(t, complaint.CreatedAt.IsZero())
	assert.Nil(t, complaint.AdminReply)
	id := complaint.ID.String()

	replied, err := f.complaints.Reply(ctx, student.ID, id, "We will check the warmers")
	require.NoError(t, err)
	assert.Equal(t, db_models.ComplaintInProgress, replied.Status)
	require.NotNil(t, replied.AdminReply)
	assert.Equal(t, "We will check the warmers", *replied.AdminReply)
	assert.NotNil(t, replied.RepliedAt)

	closed, err := f.complaints.Close(ctx, student.ID, id)
	require.NoError(t, err)
	assert.Equal(t, db_models.ComplaintResolved, closed.Status)
	require.NotNil(t, closed.ResolvedAt)

	again, err := f.complaints.Reply(ctx, student.ID, id, "Warmers replaced")
	require.NoError(t, err)
	assert.Equal(t, db_models.ComplaintResolved, again.Status)
	assert.Equal(t, "Warmers replaced", *again.AdminReply)

	listed, err := f.complaints.ListComplaints(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, db_models.ComplaintResolved, listed[0].Status)
	assert.Equal(t, "Warmers replaced", *listed[0].AdminReply)
}

func TestCloseWithoutReply(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	student := f.student(t, "Quiet Closer", 0)

	complaint, err := f.complaints.FileComplaint(ctx, student.ID, db_models.CategoryRoomFan, "Fan noise", "Fan rattles at night")
	require.NoError(t, err)

	closed, err := f.complaints.Close(ctx, student.ID, complaint.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.ComplaintResolved, closed.Status)
	assert.Nil(t, closed.AdminReply)
	assert.Nil(t, closed.RepliedAt)
	assert.NotNil(t, closed.ResolvedAt)
}

func TestStrictComplaintPolicy(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: false})
	ctx := context.Background()
	student := f.student(t, "Strict Policy", 0)

	complaint, err := f.complaints.FileComplaint(ctx, student.ID, db_models.CategoryHygiene, "Dirty trays", "Trays not washed")
	require.NoError(t, err)
	id := complaint.ID.String()

	_, err = f.complaints.Close(ctx, student.ID, id)
	require.NoError(t, err)

	_, err = f.complaints.Reply(ctx, student.ID, id, "Too late")
	require.ErrorIs(t, err, utils.ErrComplaintResolved)
	require.ErrorIs(t, err, utils.ErrValidation)

	_, err = f.complaints.Close(ctx, student.ID, id)
	require.ErrorIs(t, err, utils.ErrComplaintResolved)

	listed, err := f.complaints.ListComplaints(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].AdminReply)
}

func TestComplaintValidationAndLookup(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	student := f.student(t, "Lookup Tester", 0)
	other := f.student(t, "Other Student", 0)

	_, err := f.complaints.FileComplaint(ctx, student.ID, db_models.CategoryBilling, "Charged twice", "")
	require.ErrorIs(t, err, utils.ErrValidation)

	_, err = f.complaints.FileComplaint(ctx, student.ID, db_models.ComplaintCategory("noise"), "Loud", "Too loud")
	require.ErrorIs(t, err, utils.ErrValidation)

	_, err = f.complaints.FileComplaint(ctx, "STU404", db_models.CategoryBilling, "Charged twice", "Twice")
	require.ErrorIs(t, err, utils.ErrNotFound)

	complaint, err := f.complaints.FileComplaint(ctx, student.ID, db_models.CategoryBilling, "Charged twice", "Twice")
	require.NoError(t, err)
	id := complaint.ID.String()

	_, err = f.complaints.Reply(ctx, student.ID, id, "   ")
	require.ErrorIs(t, err, utils.ErrValidation)

	_, err = f.complaints.Reply(ctx, student.ID, "not-a-uuid", "Hello")
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = f.complaints.Reply(ctx, student.ID, uuid.NewString(), "Hello")
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = f.complaints.Reply(ctx, other.ID, id, "Wrong owner")
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = f.complaints.Close(ctx, "STU404", id)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestComplaintListings(t *testing.T) {
	f := newFixture(t, ComplaintPolicy{AllowPostResolutionEdits: true})
	ctx := context.Background()
	first := f.student(t, "First Filer", 0)
	second := f.student(t, "Second Filer", 0)

	subjects := []string{"One", "Two", "Three"}
	for _, s := range subjects {
		_, err := f.complaints.FileComplaint(ctx, first.ID, db_models.CategorySuggestion, s, "details")
		require.NoError(t, err)
	}
	other, err := f.complaints.FileComplaint(ctx, second.ID, db_models.CategoryOther, "Four", "details")
	require.NoError(t, err)
	_, err = f.complaints.Close(ctx, second.ID, other.ID.String())
	require.NoError(t, err)

	mine, err := f.complaints.ListComplaints(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for i, c := range mine {
		assert.Equal(t, subjects[i], c.Subject)
	}

	all, err := f.complaints.ListAllComplaints(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Four", all[0].Subject)

	resolved, err := f.complaints.ListAllComplaints(ctx, db_models.ComplaintResolved)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, second.ID, resolved[0].AccountID)

	_, err = f.complaints.ListAllComplaints(ctx, db_models.ComplaintStatus("open"))
	require.ErrorIs(t, err, utils.ErrValidation)
}
