package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/harukimori/study-log-api/internal/constants"
	"github.com/harukimori/study-log-api/internal/dto"
	"github.com/harukimori/study-log-api/internal/repository"
)

// The day boundary for streak purposes is anchored to JST regardless of
// where the server runs.
var jst = time.FixedZone("JST", 9*60*60)

// StatsService derives aggregate views from the user's current items and
// logs. It is read-only; the computation itself cannot fail on
// well-formed data, empty collections included.
type StatsService struct {
	itemRepo repository.StudyItemRepository
	logRepo  repository.LogRepository

	// now is swapped out by tests to pin the streak anchor
	now func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(itemRepo repository.StudyItemRepository, logRepo repository.LogRepository) *StatsService {
	return &StatsService{
		itemRepo: itemRepo,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

// Overview returns totals, the per-category rollup and the current study
// streak for the user
func (s *StatsService) Overview(userID uint64) (*dto.StatsResponse, error) {
	items, err := s.itemRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch study items: %w", err)
	}
	logs, err := s.logRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	totalTime := 0
	for _, log := range logs {
		totalTime += log.Duration
	}
	totalHours := math.Round(float64(totalTime)/60*100) / 100

	// Rollup buckets are keyed by the stored category string. Two
	// differently-cased categories form two buckets even though the
	// uniqueness check treats them as equal; that asymmetry is kept on
	// purpose.
	categoryStats := make(map[string]dto.CategoryStat, len(items))
	for _, item := range items {
		stat := categoryStats[item.Category]
		stat.Items++
		for _, log := range logs {
			if log.StudyItemID == item.ID {
				stat.Logs++
				stat.TotalTime += log.Duration
			}
		}
		categoryStats[item.Category] = stat
	}

	dates := make(map[string]struct{}, len(logs))
	for _, log := range logs {
		dates[calendarDate(log.Date)] = struct{}{}
	}

	return &dto.StatsResponse{
		TotalItems:    len(items),
		TotalLogs:     len(logs),
		TotalTime:     totalTime,
		TotalHours:    totalHours,
		CategoryStats: categoryStats,
		StudyStreak:   currentStreak(dates, s.now()),
	}, nil
}

// currentStreak counts the consecutive calendar days with at least one
// log, ending today or yesterday in JST. Walking backward from the
// anchor, each date exactly one day earlier extends the run; the first
// gap of a full day breaks it.
func currentStreak(dates map[string]struct{}, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	today := now.In(jst).Format(constants.DateLayout)
	yesterday := now.In(jst).AddDate(0, 0, -1).Format(constants.DateLayout)

	var anchor string
	if _, ok := dates[today]; ok {
		anchor = today
	} else if _, ok := dates[yesterday]; ok {
		anchor = yesterday
	} else {
		return 0
	}

	streak := 1
	for i := len(sorted) - 1; i >= 0; i-- {
		date := sorted[i]
		if date >= anchor {
			// the anchor itself is already counted; anything later
			// (a future-dated log) cannot extend the run
			continue
		}

		if date == previousDay(anchor) {
			streak++
			anchor = date
		} else {
			break
		}
	}
	return streak
}

// calendarDate strips any time-of-day component from a stored date
func calendarDate(date string) string {
	if len(date) > len(constants.DateLayout) {
		return date[:len(constants.DateLayout)]
	}
	return date
}

func previousDay(date string) string {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -1).Format(constants.DateLayout)
}
