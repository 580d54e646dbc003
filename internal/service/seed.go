package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/repository"
)

type sampleEmail struct {
	sender   string
	subject  string
	body     string
	sentDate string
}

// Fixed demo inbox used to populate a fresh dashboard.
var sampleEmails = []sampleEmail{
	{"joe@startup.io", "Help required with account verification", "Do you support integration with third-party APIs? Specifically, I'm looking for CRM integration options.", "2025-08-19T20:58:00.000Z"},
	{"diana@client.co", "General query about subscription", "Hi team, I am unable to log into my account since yesterday. Could you please help me resolve this issue?", "2025-08-25T08:58:00.000Z"},
	{"alice@startup.io", "Immediate support needed for billing error", "Hello, I wanted to ask if there was a detailed breakdown. The last line doesn't seem to work.", "2025-08-20T15:58:00.000Z"},
	{"alice@example.com", "Urgent: system access blocked", "Hi team, I am unable to log into my account since yesterday. Could you please help me resolve this issue?", "2025-08-21T08:58:00.000Z"},
	{"questions@startup.io", "Questions: integration issue with", "I cannot log into my password. The reset link doesn't seem to work.", "2025-08-20T19:58:00.000Z"},
	{"alice@example.com", "Critical help needed for downtime", "Hi team, I am unable to log into my account since yesterday. Could you please help me resolve this issue?", "2025-08-18T08:58:00.000Z"},
	{"bob@customer.com", "Urgent: system access blocked", "Despite multiple attempts, I cannot reset my password. The reset link doesn't seem to work.", "2025-08-19T13:58:00.000Z"},
	{"diana@client.co", "Support needed for login issue", "I am facing issues with verifying my account. The verification email never arrived. Can you assist?", "2025-08-23T06:58:00.000Z"},
	{"alice@example.com", "General query about subscription", "Our servers are down, and we need immediate support. This is highly critical.", "2025-08-26T09:25:00.000Z"},
	{"joe@example.com", "Help required with account verification", "Do you support integration with third-party APIs? Specifically, I'm looking for CRM integration options.", "2025-08-21T08:13:00.000Z"},
	{"diana@client.co", "Support needed for login issue", "Hi team, I am unable to log into my account since yesterday. Could you please help me resolve this issue?", "2025-08-26T08:15:00.000Z"},
	{"joe@example.com", "Help required with account verification", "Do you support integration with third-party APIs? Specifically, I'm looking for CRM integration options.", "2025-08-24T08:15:00.000Z"},
	{"alice@example.com", "Critical help needed for downtime", "Our servers are down, and we need immediate support. This is highly critical.", "2025-08-21T08:19:00.000Z"},
	{"bob@customer.com", "Query about product pricing", "I am facing issues with verifying my account. The verification email never arrived. Can you assist?", "2025-08-24T08:19:00.000Z"},
	{"alice@example.com", "General query about subscription", "I am facing issues with verifying my account. The verification email never arrived. Can you assist?", "2025-08-26T07:25:00.000Z"},
	{"joe@example.com", "Immediate support needed for billing error", "Despite multiple attempts, I cannot reset my password. The reset link doesn't seem to work.", "2025-08-19T07:58:00.000Z"},
	{"charlie@partner.org", "Request for refund process clarification", "Could you clarify the steps involved in requesting a refund? I submitted the last week but have no update.", "2025-08-22T09:58:00.000Z"},
	{"diana@client.co", "Query about product pricing", "Our servers are down, and we need immediate support. This is highly critical.", "2025-08-22T09:58:00.000Z"},
	{"bob@customer.com", "Urgent: system access blocked", "This is urgent — our system is completely inaccessible, and this is affecting our operations.", "2025-08-18T05:58:00.000Z"},
	{"charlie@partner.org", "Critical help needed for downtime", "There is a billing issue I was charged twice. This needs immediate correction.", "2025-08-24T08:58:00.000Z"},
	{"bob@customer.com", "Query about product pricing", "There is a billing issue I was charged twice. This needs immediate correction.", "2025-08-24T08:18:00.000Z"},
}

// SeedService wipes and repopulates the store with the demo inbox.
type SeedService struct {
	emailRepo *repository.EmailRepository
	processor *ProcessorService
	logger    *zap.Logger
}

func NewSeedService(emailRepo *repository.EmailRepository, processor *ProcessorService, logger *zap.Logger) *SeedService {
	return &SeedService{
		emailRepo: emailRepo,
		processor: processor,
		logger:    logger,
	}
}

// Reseed deletes every stored email, then runs the full processing pipeline
// over the sample set. Returns how many emails were seeded.
func (s *SeedService) Reseed(ctx context.Context) (int, error) {
	deleted, err := s.emailRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("cleared existing emails", zap.Int("deleted", deleted))

	for _, sample := range sampleEmails {
		sentDate, err := time.Parse(time.RFC3339, sample.sentDate)
		if err != nil {
			return 0, fmt.Errorf("parse sample sent_date %q: %w", sample.sentDate, err)
		}
		raw := model.RawEmail{
			Sender:   sample.sender,
			Subject:  sample.subject,
			Body:     sample.body,
			SentDate: &sentDate,
		}
		if _, err := s.processor.ProcessEmail(ctx, raw); err != nil {
			return 0, err
		}
	}

	return len(sampleEmails), nil
}
