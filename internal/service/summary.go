package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/repository"
	"github.com/mindwell/backend/pkg/gemini"
	"github.com/mindwell/backend/pkg/supabase"
)

// noDataSummary is returned for weeks with no check-ins. It is never persisted.
const noDataSummary = "No check-in data recorded for this week yet. Start tracking daily to see your weekly summary!"

type weeklySummaryService struct {
	checkinRepo repository.CheckInRepository
	summaryRepo repository.WeeklySummaryRepository
	insights    InsightClient
}

// NewWeeklySummaryService creates a new weekly summary service
func NewWeeklySummaryService(checkinRepo repository.CheckInRepository, summaryRepo repository.WeeklySummaryRepository, insights InsightClient) WeeklySummaryService {
	return &weeklySummaryService{
		checkinRepo: checkinRepo,
		summaryRepo: summaryRepo,
		insights:    insights,
	}
}

func (s *weeklySummaryService) SaveDailyCheckIn(ctx context.Context, req *models.SaveCheckInRequest) (*models.CheckIn, error) {
	now := time.Now()

	checkin := &models.CheckIn{
		UserID:        req.UserID,
		Date:          DayStart(now),
		WellnessScore: req.WellnessScore,
		FeelingScale:  req.FeelingScale,
		Mood:          strings.ToLower(req.Mood),
		SleepQuality:  req.SleepQuality,
		StressLevel:   req.StressLevel,
		Activities:    req.Activities,
		Notes:         req.Notes,
		Timestamp:     now,
	}

	saved, err := s.checkinRepo.Upsert(ctx, checkin)
	if err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}
	return saved, nil
}

func (s *weeklySummaryService) GetWeeklyData(ctx context.Context, userID string, start, end time.Time) ([]models.CheckIn, error) {
	checkins, err := s.checkinRepo.GetByDateRange(ctx, userID, start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly data: %w", err)
	}
	return checkins, nil
}

// GenerateWeeklySummary returns the summary for (user, week). The cached row
// is reused when it still covers every check-in in the window; otherwise the
// summary is recomputed and written back. An empty week yields an ephemeral
// no-data summary and clears any persisted row left from a deleted check-in.
func (s *weeklySummaryService) GenerateWeeklySummary(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklySummary, error) {
	weekStart = WeekStart(weekStart)
	start, end := WeekWindow(weekStart)

	week, err := s.checkinRepo.GetByDateRange(ctx, userID, start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get week check-ins: %w", err)
	}

	cached, err := s.summaryRepo.GetByUserAndWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get cached summary: %w", err)
	}

	if len(week) == 0 {
		if cached != nil {
			if err := s.summaryRepo.Delete(ctx, cached.ID); err != nil {
				logger.Ctx(ctx).Warn("failed to delete orphaned weekly summary", logger.Err(err))
			}
		}
		return s.emptyWeekSummary(userID, weekStart), nil
	}

	if cached != nil && summaryCovers(cached, week) {
		return cached, nil
	}

	now := time.Now()
	analytics := ComputeWeeklyAnalytics(week)
	aiSummary := s.weeklyInsightText(ctx, week, analytics)

	ids := make([]string, 0, len(week))
	for _, c := range week {
		ids = append(ids, c.ID)
	}

	summary := &models.WeeklySummary{
		UserID:          userID,
		WeekStartDate:   weekStart,
		WeekEndDate:     weekStart.AddDate(0, 0, 6),
		Summary:         buildSummaryContent(analytics, aiSummary),
		DailyCheckinIDs: ids,
		LastUpdated:     now,
	}
	if cached != nil {
		summary.ID = cached.ID
	}

	saved, err := s.summaryRepo.Upsert(ctx, summary)
	if errors.Is(err, supabase.ErrConflict) {
		// a concurrent writer inserted the row first; rewrite it in place
		saved, err = s.summaryRepo.Update(ctx, summary)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save weekly summary: %w", err)
	}
	return saved, nil
}

// summaryCovers reports whether a cached summary still reflects the week's
// check-ins. It is stale once the count changes or any check-in was written
// after the summary.
func summaryCovers(cached *models.WeeklySummary, week []models.CheckIn) bool {
	if len(cached.DailyCheckinIDs) != len(week) {
		return false
	}
	for _, c := range week {
		written := c.Timestamp
		if c.UpdatedAt.After(written) {
			written = c.UpdatedAt
		}
		if written.After(cached.LastUpdated) {
			return false
		}
	}
	return true
}

func (s *weeklySummaryService) weeklyInsightText(ctx context.Context, week []models.CheckIn, analytics *models.WeeklyAnalytics) string {
	if s.insights != nil {
		genCtx, cancel := context.WithTimeout(ctx, gemini.RequestTimeout)
		defer cancel()

		text, err := s.insights.Generate(genCtx, WeeklyPrompt(week, analytics))
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			logger.Ctx(ctx).Warn("weekly insight generation failed, using fallback", logger.Err(err))
		}
	}
	return FallbackWeeklyInsights(analytics)
}

func buildSummaryContent(analytics *models.WeeklyAnalytics, aiSummary string) models.SummaryContent {
	trends := models.SummaryTrends{
		MoodFrequency:      analytics.MoodFrequency,
		WellnessScoreTrend: analytics.Trend,
	}
	if analytics.BestDay != nil {
		trends.BestDay = dayRef(analytics.BestDay)
	}
	if analytics.ChallengingDay != nil {
		trends.ChallengingDay = dayRef(analytics.ChallengingDay)
	}

	return models.SummaryContent{
		Period: models.SummaryPeriod{
			StartDate: analytics.StartDate,
			EndDate:   analytics.EndDate,
			TotalDays: analytics.TotalDays,
		},
		Averages: models.MetricAverages{
			WellnessScore: analytics.AvgWellnessScore,
			FeelingScale:  analytics.AvgFeelingScale,
			SleepQuality:  analytics.AvgSleepQuality,
			StressLevel:   analytics.AvgStressLevel,
		},
		Trends: trends,
		Insights: models.SummaryInsights{
			AISummary:       aiSummary,
			KeyPatterns:     analytics.KeyPatterns,
			Recommendations: analytics.Recommendations,
		},
	}
}

func dayRef(c *models.CheckIn) *models.DayRef {
	return &models.DayRef{
		CheckinID:     c.ID,
		Date:          c.Date,
		WellnessScore: c.WellnessScore,
		Mood:          c.Mood,
	}
}

func (s *weeklySummaryService) emptyWeekSummary(userID string, weekStart time.Time) *models.WeeklySummary {
	return &models.WeeklySummary{
		UserID:        userID,
		WeekStartDate: weekStart,
		WeekEndDate:   weekStart.AddDate(0, 0, 6),
		Summary: models.SummaryContent{
			Period: models.SummaryPeriod{
				StartDate: weekStart,
				EndDate:   weekStart.AddDate(0, 0, 6),
				TotalDays: 0,
			},
			Trends: models.SummaryTrends{
				MoodFrequency:      map[string]int{},
				WellnessScoreTrend: TrendStable,
			},
			Insights: models.SummaryInsights{
				AISummary:       noDataSummary,
				KeyPatterns:     []string{},
				Recommendations: []string{"Complete your first check-in of the week to start building your summary"},
			},
		},
		DailyCheckinIDs: []string{},
		LastUpdated:     time.Now(),
	}
}
