package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/AvishekRimal/student-planner/internal/cache"
	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"golang.org/x/sync/singleflight"
)

const (
	weeklyWindow = 28 * 24 * time.Hour
	trendWindow  = 30 * 24 * time.Hour
)

// StatsService computes the three-section productivity report. The owner's
// task set is fetched once and reduced three ways in memory, so the store
// sees a single round trip per (uncached) request.
type StatsService struct {
	repo  repo.TaskRepo
	cache *cache.StatsCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewStatsService creates a StatsService. If c is nil, caching is disabled.
func NewStatsService(r repo.TaskRepo, c *cache.StatsCache) *StatsService {
	return &StatsService{repo: r, cache: c, now: time.Now}
}

// Stats returns the report for one user. Concurrent requests for the same
// user share one computation via singleflight.
func (s *StatsService) Stats(ctx context.Context, userID int64) (dom.Stats, error) {
	key := strconv.FormatInt(userID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if s.cache != nil {
			if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
				return *cached, nil
			}
		}
		tasks, err := s.repo.TasksForStats(ctx, userID)
		if err != nil {
			return nil, err
		}
		stats := computeStats(tasks, s.now())
		if s.cache != nil {
			_ = s.cache.Set(ctx, userID, stats)
		}
		return stats, nil
	})
	if err != nil {
		return dom.Stats{}, err
	}
	return v.(dom.Stats), nil
}

// computeStats reduces one fetched task set into the three report sections.
func computeStats(tasks []dom.Task, now time.Time) dom.Stats {
	return dom.Stats{
		TasksByCategory:   categoryCounts(tasks),
		TasksByWeek:       weeklyCounts(tasks, now),
		ProductivityTrend: completionTrend(tasks, now),
	}
}

// categoryCounts groups all of the user's tasks by category, all-time.
// Sorted by category name for deterministic output.
func categoryCounts(tasks []dom.Task) []dom.CategoryCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		category := t.Category
		if category == "" {
			category = dom.DefaultCategory
		}
		counts[category]++
	}
	out := make([]dom.CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, dom.CategoryCount{Category: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// weeklyCounts buckets tasks created in the trailing 28 days by ISO week
// number, counting how many of each bucket are completed. Ascending by week.
func weeklyCounts(tasks []dom.Task, now time.Time) []dom.WeekCount {
	cutoff := now.Add(-weeklyWindow)
	byWeek := make(map[int]*dom.WeekCount)
	for _, t := range tasks {
		if t.CreatedAt.Before(cutoff) {
			continue
		}
		_, week := t.CreatedAt.ISOWeek()
		wc, ok := byWeek[week]
		if !ok {
			wc = &dom.WeekCount{Week: week}
			byWeek[week] = wc
		}
		wc.Created++
		if t.Completed {
			wc.Completed++
		}
	}
	out := make([]dom.WeekCount, 0, len(byWeek))
	for _, wc := range byWeek {
		out = append(out, *wc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

// completionTrend counts tasks per day that are completed and were last
// touched within the trailing 30 days. A task finished long ago and never
// updated since stays out of the window. Ascending by date string.
func completionTrend(tasks []dom.Task, now time.Time) []dom.TrendPoint {
	cutoff := now.Add(-trendWindow)
	byDay := make(map[string]int)
	for _, t := range tasks {
		if !t.Completed || t.UpdatedAt.Before(cutoff) {
			continue
		}
		byDay[t.UpdatedAt.UTC().Format("2006-01-02")]++
	}
	out := make([]dom.TrendPoint, 0, len(byDay))
	for date, n := range byDay {
		out = append(out, dom.TrendPoint{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
