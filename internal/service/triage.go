package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/repository"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/pkg/metrics"
)

// TriageService covers the operator-facing mutations: advancing an email's
// status and overwriting its generated response. Both go through the same
// key scheme as the processor so the counters stay consistent.
type TriageService struct {
	emailRepo *repository.EmailRepository
	statsRepo *repository.StatsRepository
	logger    *zap.Logger
}

func NewTriageService(emailRepo *repository.EmailRepository, statsRepo *repository.StatsRepository, logger *zap.Logger) *TriageService {
	return &TriageService{
		emailRepo: emailRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// UpdateStatus sets the email's status. Moving to responded or resolved also
// bumps the resolved counter and drains one from pending for the current UTC
// day; setting pending has no counter side effect.
func (s *TriageService) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Email, error) {
	if !model.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	email, err := s.emailRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if status == model.StatusResponded || status == model.StatusResolved {
		day := repository.DayUTC(now())
		if err := s.statsRepo.MarkResolved(ctx, day); err != nil {
			s.logger.Error("failed to update resolution counters",
				zap.String("email_id", id),
				zap.String("day", day),
				zap.Error(err),
			)
			return nil, err
		}
	}

	metrics.IncrementStatusUpdate(string(status))
	return email, nil
}

// UpdateResponse overwrites the email's reply text with operator-edited copy.
func (s *TriageService) UpdateResponse(ctx context.Context, id, response string) (*model.Email, error) {
	return s.emailRepo.UpdateResponse(ctx, id, response)
}
