package service

import (
	"context"
	"time"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/repository"
)

// AnalyticsSnapshot is the dashboard's aggregate view: today's counters plus
// a percentage comparison against yesterday's total.
type AnalyticsSnapshot struct {
	Today      repository.DayStats `json:"today"`
	Comparison Comparison          `json:"comparison"`
}

type Comparison struct {
	TotalChange float64 `json:"totalChange"`
}

// AnalyticsService reads the daily counters back for the dashboard.
type AnalyticsService struct {
	statsRepo *repository.StatsRepository
}

func NewAnalyticsService(statsRepo *repository.StatsRepository) *AnalyticsService {
	return &AnalyticsService{statsRepo: statsRepo}
}

// Snapshot reads today's counters and yesterday's total, both bucketed by
// the UTC calendar date.
func (s *AnalyticsService) Snapshot(ctx context.Context) (AnalyticsSnapshot, error) {
	t := now()
	today := repository.DayUTC(t)
	yesterday := repository.DayUTC(t.Add(-24 * time.Hour))

	todayStats, err := s.statsRepo.ReadDay(ctx, today)
	if err != nil {
		return AnalyticsSnapshot{}, err
	}
	yesterdayStats, err := s.statsRepo.ReadDay(ctx, yesterday)
	if err != nil {
		return AnalyticsSnapshot{}, err
	}

	denom := yesterdayStats.Total
	if denom < 1 {
		denom = 1
	}
	change := float64(todayStats.Total-yesterdayStats.Total) / float64(denom) * 100

	return AnalyticsSnapshot{
		Today:      todayStats,
		Comparison: Comparison{TotalChange: change},
	}, nil
}
