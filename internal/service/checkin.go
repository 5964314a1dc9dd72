package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/repository"
	"github.com/mindwell/backend/pkg/gemini"
)

type checkInService struct {
	checkinRepo repository.CheckInRepository
	insights    InsightClient
}

// NewCheckInService creates a new check-in service. The insight client may
// be nil when no AI collaborator is configured; every call then uses the
// deterministic fallback.
func NewCheckInService(checkinRepo repository.CheckInRepository, insights InsightClient) CheckInService {
	return &checkInService{
		checkinRepo: checkinRepo,
		insights:    insights,
	}
}

// AnalyzeCheckIn scores, analyzes and persists one validated submission.
// Input is assumed to have passed ValidateCheckIn.
func (s *checkInService) AnalyzeCheckIn(ctx context.Context, sub *models.CheckInSubmission) (*models.CheckInAnalysis, error) {
	now := time.Now()

	feelingScale := int(*sub.FeelingScale)
	sleepQuality := int(*sub.SleepQuality)
	stressLevel := int(*sub.StressLevel)
	mood := strings.ToLower(*sub.Mood)

	wellnessScore := CalculateDailyScore(feelingScale, sleepQuality, stressLevel)
	dataInsights := GenerateDataInsights(wellnessScore, feelingScale, sleepQuality, stressLevel)
	supportive := s.supportiveInsights(ctx, sub, feelingScale, sleepQuality, stressLevel, mood)

	checkin := &models.CheckIn{
		UserID:        *sub.UserID,
		Date:          DayStart(now),
		WellnessScore: wellnessScore,
		FeelingScale:  feelingScale,
		Mood:          mood,
		SleepQuality:  sleepQuality,
		StressLevel:   stressLevel,
		Activities:    sub.Activities,
		Notes:         sub.AdditionalNotes,
		Timestamp:     now,
	}

	created, err := s.checkinRepo.Create(ctx, checkin)
	if err != nil {
		// ErrDuplicateCheckIn passes through for the handler to translate
		return nil, err
	}

	recent, err := s.checkinRepo.GetRecent(ctx, created.UserID, DefaultTrendWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent check-ins: %w", err)
	}

	return &models.CheckInAnalysis{
		WellnessScore:      wellnessScore,
		DataInsights:       dataInsights,
		SupportiveInsights: supportive,
		Trends:             ComputeRecentTrend(recent),
		Summary: models.CheckInSummary{
			FeelingScale: feelingScale,
			SleepQuality: sleepQuality,
			StressLevel:  stressLevel,
			Mood:         mood,
		},
		Timestamp: now,
		CheckinID: created.ID,
	}, nil
}

// supportiveInsights asks the AI collaborator for pattern text and falls
// back to the deterministic response on any failure. The request never fails
// because the collaborator is unavailable.
func (s *checkInService) supportiveInsights(ctx context.Context, sub *models.CheckInSubmission, feelingScale, sleepQuality, stressLevel int, mood string) string {
	if s.insights != nil {
		genCtx, cancel := context.WithTimeout(ctx, gemini.RequestTimeout)
		defer cancel()

		text, err := s.insights.Generate(genCtx, CheckInPrompt(sub))
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			logger.Ctx(ctx).Warn("supportive insight generation failed, using fallback", logger.Err(err))
		}
	}

	return FallbackSupportiveResponse(feelingScale, sleepQuality, stressLevel, mood)
}

func (s *checkInService) History(ctx context.Context, userID string, days, page, limit int) (*models.CheckInHistory, error) {
	since := DayStart(time.Now().AddDate(0, 0, -days))
	offset := (page - 1) * limit

	checkins, total, err := s.checkinRepo.GetHistory(ctx, userID, since, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in history: %w", err)
	}

	totalPages := (total + limit - 1) / limit

	return &models.CheckInHistory{
		Checkins: checkins,
		Pagination: models.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNextPage: page*limit < total,
		},
	}, nil
}

func (s *checkInService) WellnessTrends(ctx context.Context, userID string, days int) (*models.TrendsReport, error) {
	now := time.Now()
	start := DayStart(now.AddDate(0, 0, -days))

	checkins, err := s.checkinRepo.GetByDateRange(ctx, userID, start, now, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-ins: %w", err)
	}

	stats := ComputeTrendStats(checkins)

	daily := make([]models.DailyTrendPoint, 0, len(checkins))
	for _, c := range checkins {
		daily = append(daily, models.DailyTrendPoint{
			Date:          c.Date,
			WellnessScore: c.WellnessScore,
			FeelingScale:  c.FeelingScale,
			SleepQuality:  c.SleepQuality,
			StressLevel:   c.StressLevel,
			Mood:          c.Mood,
		})
	}

	return &models.TrendsReport{
		Summary:         stats,
		DailyTrends:     daily,
		PatternInsights: PatternInsights(checkins, stats),
		Period:          fmt.Sprintf("%d days", days),
	}, nil
}

func (s *checkInService) CorrelationInsights(ctx context.Context, userID string, days int) (*models.CorrelationResult, error) {
	now := time.Now()
	start := DayStart(now.AddDate(0, 0, -days))

	checkins, err := s.checkinRepo.GetByDateRange(ctx, userID, start, now, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-ins: %w", err)
	}

	result := ComputeCorrelations(checkins)
	return &result, nil
}
