package service

import (
	"context"
	"testing"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

func TestSnapshotEmptyStore(t *testing.T) {
	f := newFixture(t)

	snap, err := f.analytics.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Today.Total != 0 {
		t.Errorf("total = %d, want 0", snap.Today.Total)
	}
	if snap.Comparison.TotalChange != 0 {
		t.Errorf("totalChange = %f, want 0", snap.Comparison.TotalChange)
	}
}

func TestSnapshotAfterProcessing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := f.processor.ProcessEmail(ctx, model.RawEmail{
			Sender:  "a@b.com",
			Subject: "Hello",
			Body:    "General question",
		}); err != nil {
			t.Fatalf("ProcessEmail failed: %v", err)
		}
	}

	snap, err := f.analytics.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Today.Total != n {
		t.Errorf("total = %d, want %d", snap.Today.Total, n)
	}
	sum := snap.Today.Sentiment.Positive + snap.Today.Sentiment.Negative + snap.Today.Sentiment.Neutral
	if sum != n {
		t.Errorf("sentiment buckets sum to %d, want %d", sum, n)
	}
	// Yesterday has no traffic, so the change is total * 100 over a floor of 1.
	if want := float64(n) * 100; snap.Comparison.TotalChange != want {
		t.Errorf("totalChange = %f, want %f", snap.Comparison.TotalChange, want)
	}
}

func TestSeedEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seeded, err := f.seeder.Reseed(ctx)
	if err != nil {
		t.Fatalf("Reseed failed: %v", err)
	}
	if seeded != len(sampleEmails) {
		t.Errorf("seeded = %d, want %d", seeded, len(sampleEmails))
	}

	emails, err := f.emailRepo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(emails) != len(sampleEmails) {
		t.Errorf("stored %d emails, want %d", len(emails), len(sampleEmails))
	}

	snap, err := f.analytics.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Today.Total != int64(len(sampleEmails)) {
		t.Errorf("today.total = %d, want %d", snap.Today.Total, len(sampleEmails))
	}
	sum := snap.Today.Sentiment.Positive + snap.Today.Sentiment.Negative + snap.Today.Sentiment.Neutral
	if sum != int64(len(sampleEmails)) {
		t.Errorf("sentiment buckets sum to %d, want %d", sum, len(sampleEmails))
	}
}

func TestReseedWipesExistingEmails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.seeder.Reseed(ctx); err != nil {
		t.Fatalf("first Reseed failed: %v", err)
	}
	if _, err := f.seeder.Reseed(ctx); err != nil {
		t.Fatalf("second Reseed failed: %v", err)
	}

	emails, err := f.emailRepo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	// The wipe removes the first batch; counters intentionally keep
	// accumulating, only records are reset.
	if len(emails) != len(sampleEmails) {
		t.Errorf("stored %d emails after double reseed, want %d", len(emails), len(sampleEmails))
	}
}
