package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

func TestDayUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2025, 8, 25, 23, 30, 0, 0, loc)
	if got := DayUTC(at); got != "2025-08-26" {
		t.Errorf("DayUTC = %s, want 2025-08-26", got)
	}
}

func TestIncrProcessedAndReadDay(t *testing.T) {
	repo := NewStatsRepository(newTestStore(t))
	ctx := context.Background()
	day := "2025-08-26"

	for i := 0; i < 3; i++ {
		if err := repo.IncrProcessed(ctx, day, model.SentimentNegative, model.PriorityUrgent); err != nil {
			t.Fatalf("IncrProcessed failed: %v", err)
		}
	}
	if err := repo.IncrProcessed(ctx, day, model.SentimentPositive, model.PriorityNormal); err != nil {
		t.Fatalf("IncrProcessed failed: %v", err)
	}

	stats, err := repo.ReadDay(ctx, day)
	if err != nil {
		t.Fatalf("ReadDay failed: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 4 {
		t.Errorf("total=%d pending=%d, want 4/4", stats.Total, stats.Pending)
	}
	if stats.Sentiment.Negative != 3 || stats.Sentiment.Positive != 1 || stats.Sentiment.Neutral != 0 {
		t.Errorf("sentiment = %+v", stats.Sentiment)
	}
	if stats.Priority.Urgent != 3 || stats.Priority.Normal != 1 {
		t.Errorf("priority = %+v", stats.Priority)
	}
}

func TestReadDayMissingKeysAreZero(t *testing.T) {
	repo := NewStatsRepository(newTestStore(t))

	stats, err := repo.ReadDay(context.Background(), "1999-01-01")
	if err != nil {
		t.Fatalf("ReadDay failed: %v", err)
	}
	if stats.Total != 0 || stats.Pending != 0 || stats.Resolved != 0 {
		t.Errorf("expected zeroes, got %+v", stats)
	}
}

func TestMarkResolved(t *testing.T) {
	repo := NewStatsRepository(newTestStore(t))
	ctx := context.Background()
	day := "2025-08-26"

	if err := repo.IncrProcessed(ctx, day, model.SentimentNeutral, model.PriorityNormal); err != nil {
		t.Fatalf("IncrProcessed failed: %v", err)
	}
	if err := repo.MarkResolved(ctx, day); err != nil {
		t.Fatalf("MarkResolved failed: %v", err)
	}

	stats, err := repo.ReadDay(ctx, day)
	if err != nil {
		t.Fatalf("ReadDay failed: %v", err)
	}
	if stats.Resolved != 1 {
		t.Errorf("resolved = %d, want 1", stats.Resolved)
	}
	if stats.Pending != 0 {
		t.Errorf("pending = %d, want 0", stats.Pending)
	}
}

func TestMarkResolvedPendingFloorsAtZero(t *testing.T) {
	repo := NewStatsRepository(newTestStore(t))
	ctx := context.Background()
	day := "2025-08-26"

	// No pending emails today; a resolution on a backlogged email must not
	// drive the gauge negative.
	if err := repo.MarkResolved(ctx, day); err != nil {
		t.Fatalf("MarkResolved failed: %v", err)
	}

	stats, err := repo.ReadDay(ctx, day)
	if err != nil {
		t.Fatalf("ReadDay failed: %v", err)
	}
	if stats.Pending != 0 {
		t.Errorf("pending = %d, want 0", stats.Pending)
	}
	if stats.Resolved != 1 {
		t.Errorf("resolved = %d, want 1", stats.Resolved)
	}
}
