package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"messhall/internal/models/db_models"
	"messhall/internal/repositories"
	"messhall/pkg/utils"
)

// ComplaintPolicy controls what may happen to a complaint once resolved.
// With AllowPostResolutionEdits a reply still overwrites the text (status
// stays resolved) and a close re-stamps ResolvedAt; without it both fail
// with utils.ErrComplaintResolved.
type ComplaintPolicy struct {
	AllowPostResolutionEdits bool
}

type ComplaintServiceInterface interface {
	FileComplaint(ctx context.Context, studentID string, category db_models.ComplaintCategory, subject, description string) (*db_models.Complaint, error)
	Reply(ctx context.Context, studentID, complaintID, text string) (*db_models.Complaint, error)
	Close(ctx context.Context, studentID, complaintID string) (*db_models.Complaint, error)
	ListComplaints(ctx context.Context, studentID string) ([]db_models.Complaint, error)
	ListAllComplaints(ctx context.Context, status db_models.ComplaintStatus) ([]db_models.Complaint, error)
}

type ComplaintService struct {
	complaintRepo repositories.ComplaintRepositoryInterface
	accountRepo   repositories.AccountRepository
	policy        ComplaintPolicy
	now           func() time.Time
	logger        *zap.Logger
}

func NewComplaintService(complaintRepo repositories.ComplaintRepositoryInterface, accountRepo repositories.AccountRepository, policy ComplaintPolicy, logger *zap.Logger) ComplaintServiceInterface {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		accountRepo:   accountRepo,
		policy:        policy,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *ComplaintService) requireAccount(ctx context.Context, studentID string) error {
	account, err := s.accountRepo.FindById(ctx, studentID)
	if err != nil {
		return asServiceError(err)
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	return nil
}

func (s *ComplaintService) FileComplaint(ctx context.Context, studentID string, category db_models.ComplaintCategory, subject, description string) (*db_models.Complaint, error) {
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)

	if subject == "" {
		return nil, utils.NewValidationError("subject", "is required")
	}
	if description == "" {
		return nil, utils.NewValidationError("description", "is required")
	}
	if !category.Valid() {
		return nil, utils.NewValidationError("category", "unknown category")
	}
	if err := s.requireAccount(ctx, studentID); err != nil {
		return nil, err
	}

	complaint := &db_models.Complaint{
		AccountID:   studentID,
		Category:    category,
		Subject:     subject,
		Description: description,
		Status:      db_models.ComplaintPending,
	}
	complaint.CreatedAt = s.now().UTC()

	if err := s.complaintRepo.CreateComplaint(ctx, complaint); err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("complaint filed",
		zap.String("student_id", studentID),
		zap.String("complaint_id", complaint.ID.String()),
		zap.String("category", string(category)))
	return complaint, nil
}

func (s *ComplaintService) Reply(ctx context.Context, studentID, complaintID, text string) (*db_models.Complaint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.NewValidationError("text", "is required")
	}
	if err := s.requireAccount(ctx, studentID); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.UpdateLocked(ctx, studentID, complaintID, func(c *db_models.Complaint) error {
		if c.Status == db_models.ComplaintResolved {
			if !s.policy.AllowPostResolutionEdits {
				return utils.ErrComplaintResolved
			}
		} else {
			c.Status = db_models.ComplaintInProgress
		}

		now := s.now().UTC()
		c.AdminReply = &text
		c.RepliedAt = &now
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("complaint replied",
		zap.String("student_id", studentID),
		zap.String("complaint_id", complaintID),
		zap.String("status", string(complaint.Status)))
	return complaint, nil
}

func (s *ComplaintService) Close(ctx context.Context, studentID, complaintID string) (*db_models.Complaint, error) {
	if err := s.requireAccount(ctx, studentID); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.UpdateLocked(ctx, studentID, complaintID, func(c *db_models.Complaint) error {
		if c.Status == db_models.ComplaintResolved && !s.policy.AllowPostResolutionEdits {
			return utils.ErrComplaintResolved
		}

		now := s.now().UTC()
		c.Status = db_models.ComplaintResolved
		c.ResolvedAt = &now
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("complaint closed",
		zap.String("student_id", studentID),
		zap.String("complaint_id", complaintID))
	return complaint, nil
}

func (s *ComplaintService) ListComplaints(ctx context.Context, studentID string) ([]db_models.Complaint, error) {
	if err := s.requireAccount(ctx, studentID); err != nil {
		return nil, err
	}

	complaints, err := s.complaintRepo.ListByAccount(ctx, studentID)
	if err != nil {
		return nil, asServiceError(err)
	}
	return complaints, nil
}

func (s *ComplaintService) ListAllComplaints(ctx context.Context, status db_models.ComplaintStatus) ([]db_models.Complaint, error) {
	switch status {
	case "", db_models.ComplaintPending, db_models.ComplaintInProgress, db_models.ComplaintResolved:
	default:
		return nil, utils.NewValidationError("status", "must be pending, in-progress or resolved")
	}

	complaints, err := s.complaintRepo.ListAll(ctx, status)
	if err != nil {
		return nil, asServiceError(err)
	}
	return complaints, nil
}
