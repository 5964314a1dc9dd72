package service

import (
	"context"
	"time"

	"github.com/mindwell/backend/internal/models"
)

// InsightClient is the text-generation collaborator boundary. Implementations
// may fail for any reason (timeout, quota, malformed output); callers always
// recover with deterministic fallback text.
type InsightClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CheckInService defines the interface for the daily check-in flow
type CheckInService interface {
	// AnalyzeCheckIn validates, scores, persists and analyzes one submission
	AnalyzeCheckIn(ctx context.Context, sub *models.CheckInSubmission) (*models.CheckInAnalysis, error)
	// History returns a page of past check-ins
	History(ctx context.Context, userID string, days, page, limit int) (*models.CheckInHistory, error)
	// WellnessTrends aggregates a day window into stats, a daily series and
	// deterministic pattern insights
	WellnessTrends(ctx context.Context, userID string, days int) (*models.TrendsReport, error)
	// CorrelationInsights computes pairwise metric correlations over a day window
	CorrelationInsights(ctx context.Context, userID string, days int) (*models.CorrelationResult, error)
}

// StressService defines the interface for stress assessments
type StressService interface {
	AnalyzeStress(ctx context.Context, sub *models.StressSubmission) (*models.StressAnalysis, error)
	History(ctx context.Context, userID string, limit int) ([]models.StressAssessment, error)
	Insights(ctx context.Context, userID string) (*models.StressInsights, error)
}

// WeeklySummaryService defines the interface for the cached weekly rollup
type WeeklySummaryService interface {
	// SaveDailyCheckIn is the narrow upsert-by-(user, day) save path
	SaveDailyCheckIn(ctx context.Context, req *models.SaveCheckInRequest) (*models.CheckIn, error)
	// GetWeeklyData returns chronological check-ins for an explicit range
	GetWeeklyData(ctx context.Context, userID string, start, end time.Time) ([]models.CheckIn, error)
	// GenerateWeeklySummary returns the summary for (user, week), reusing the
	// cached copy when it is still fresh
	GenerateWeeklySummary(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklySummary, error)
}
