package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/classify"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/repository"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/pkg/metrics"
)

// now is swapped out in tests that pin the day bucket.
var now = time.Now

// ProcessorService owns email record creation: it runs the classification
// pipeline over a raw email, persists the record and bumps the daily
// counters.
type ProcessorService struct {
	emailRepo *repository.EmailRepository
	statsRepo *repository.StatsRepository
	logger    *zap.Logger
}

func NewProcessorService(emailRepo *repository.EmailRepository, statsRepo *repository.StatsRepository, logger *zap.Logger) *ProcessorService {
	return &ProcessorService{
		emailRepo: emailRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// ProcessEmail classifies raw, persists the resulting record and increments
// the creation-time counters. Missing input fields are tolerated as empty
// strings; the HTTP boundary rejects them before this point.
func (s *ProcessorService) ProcessEmail(ctx context.Context, raw model.RawEmail) (*model.Email, error) {
	createdAt := now()

	text := raw.Subject + " " + raw.Body
	sentiment := classify.AnalyzeSentiment(text)
	priority := classify.DetectPriority(text)

	sentDate := createdAt
	if raw.SentDate != nil {
		sentDate = *raw.SentDate
	}

	email := &model.Email{
		ID:        uuid.NewString(),
		Sender:    raw.Sender,
		Subject:   raw.Subject,
		Body:      raw.Body,
		SentDate:  sentDate,
		Sentiment: sentiment,
		Priority:  priority,
		Category:  model.CategoryFor(priority),
		Status:    model.StatusPending,
		CreatedAt: createdAt,
	}
	email.ExtractedInfo = classify.ExtractInformation(email)
	email.AIResponse = classify.GenerateResponse(email)

	if err := s.emailRepo.Save(ctx, email); err != nil {
		s.logger.Error("failed to persist email", zap.String("email_id", email.ID), zap.Error(err))
		return nil, err
	}

	day := repository.DayUTC(createdAt)
	if err := s.statsRepo.IncrProcessed(ctx, day, sentiment, priority); err != nil {
		s.logger.Error("failed to update daily counters",
			zap.String("email_id", email.ID),
			zap.String("day", day),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.IncrementEmailProcessed(string(sentiment), string(priority))

	s.logger.Info("email processed",
		zap.String("email_id", email.ID),
		zap.String("sentiment", string(sentiment)),
		zap.String("priority", string(priority)),
	)

	return email, nil
}
