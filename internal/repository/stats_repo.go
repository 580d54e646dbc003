package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/kvstore"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
)

// DayUTC buckets a wall-clock instant into its UTC calendar date. Counters
// are always bucketed by mutation time, never by an email's sent_date.
func DayUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func totalKey(day string) string    { return "stats:emails:total:" + day }
func pendingKey(day string) string  { return "stats:emails:pending:" + day }
func resolvedKey(day string) string { return "stats:emails:resolved:" + day }
func sentimentKey(s model.Sentiment, day string) string {
	return fmt.Sprintf("stats:sentiment:%s:%s", s, day)
}
func priorityKey(p model.Priority, day string) string {
	return fmt.Sprintf("stats:priority:%s:%s", p, day)
}

// DayStats is one day's worth of aggregate counters.
type DayStats struct {
	Total     int64          `json:"total"`
	Pending   int64          `json:"pending"`
	Resolved  int64          `json:"resolved"`
	Sentiment SentimentStats `json:"sentiment"`
	Priority  PriorityStats  `json:"priority"`
}

type SentimentStats struct {
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
	Neutral  int64 `json:"neutral"`
}

type PriorityStats struct {
	Urgent int64 `json:"urgent"`
	Normal int64 `json:"normal"`
}

// StatsRepository maintains the daily counters. Increments go through the
// store's atomic INCRBY, which closes the lost-update race of plain
// read-then-write pairs; the single exception is the floored pending
// decrement in MarkResolved.
type StatsRepository struct {
	store kvstore.Store
}

func NewStatsRepository(store kvstore.Store) *StatsRepository {
	return &StatsRepository{store: store}
}

// IncrProcessed bumps the four creation-time counters for day: total,
// pending, the sentiment bucket and the priority bucket.
func (r *StatsRepository) IncrProcessed(ctx context.Context, day string, s model.Sentiment, p model.Priority) error {
	keys := []string{totalKey(day), pendingKey(day), sentimentKey(s, day), priorityKey(p, day)}
	for _, key := range keys {
		if _, err := r.store.IncrBy(ctx, key, 1); err != nil {
			return err
		}
	}
	return nil
}

// MarkResolved records a responded/resolved transition: resolved goes up by
// one and pending goes down by one, floored at zero. The floor forces a
// read-then-write on the pending key; concurrent transitions on the same day
// can lose a decrement, which only skews the pending gauge, never totals.
func (r *StatsRepository) MarkResolved(ctx context.Context, day string) error {
	if _, err := r.store.IncrBy(ctx, resolvedKey(day), 1); err != nil {
		return err
	}
	pending, err := r.readCounter(ctx, pendingKey(day))
	if err != nil {
		return err
	}
	next := pending - 1
	if next < 0 {
		next = 0
	}
	return r.store.Set(ctx, pendingKey(day), strconv.FormatInt(next, 10))
}

// ReadDay returns all counters for day; missing keys read as zero.
func (r *StatsRepository) ReadDay(ctx context.Context, day string) (DayStats, error) {
	var stats DayStats
	reads := []struct {
		key  string
		dest *int64
	}{
		{totalKey(day), &stats.Total},
		{pendingKey(day), &stats.Pending},
		{resolvedKey(day), &stats.Resolved},
		{sentimentKey(model.SentimentPositive, day), &stats.Sentiment.Positive},
		{sentimentKey(model.SentimentNegative, day), &stats.Sentiment.Negative},
		{sentimentKey(model.SentimentNeutral, day), &stats.Sentiment.Neutral},
		{priorityKey(model.PriorityUrgent, day), &stats.Priority.Urgent},
		{priorityKey(model.PriorityNormal, day), &stats.Priority.Normal},
	}
	for _, rd := range reads {
		n, err := r.readCounter(ctx, rd.key)
		if err != nil {
			return DayStats{}, err
		}
		*rd.dest = n
	}
	return stats, nil
}

func (r *StatsRepository) readCounter(ctx context.Context, key string) (int64, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s holds non-integer %q: %w", key, raw, err)
	}
	return n, nil
}
