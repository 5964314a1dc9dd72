package models

import "time"

// ScoreCalculation spells out how each metric contributed to a wellness score
type ScoreCalculation struct {
	FeelingScale string `json:"feeling_scale"`
	SleepQuality string `json:"sleep_quality"`
	StressLevel  string `json:"stress_level"`
}

// DataInsights holds the deterministic, threshold-based observations for one
// check-in. These never come from the AI collaborator.
type DataInsights struct {
	WellnessScore    float64          `json:"wellness_score"`
	ScoreCalculation ScoreCalculation `json:"score_calculation"`
	Observations     []string         `json:"observations"`
	Note             string           `json:"note"`
}

// RecentTrend compares the newest check-in against the one before it over a
// bounded recent window. When fewer than two records exist only Message and
// DataPoints are set.
type RecentTrend struct {
	Message       string   `json:"message,omitempty"`
	DataPoints    int      `json:"data_points"`
	ScoreChange   *float64 `json:"score_change,omitempty"`
	FeelingChange *float64 `json:"feeling_change,omitempty"`
	SleepChange   *float64 `json:"sleep_change,omitempty"`
	StressChange  *float64 `json:"stress_change,omitempty"`
	AverageScore  *float64 `json:"average_score,omitempty"`
}

// CheckInSummary echoes the submitted metrics back in the analysis response
type CheckInSummary struct {
	FeelingScale int    `json:"feeling_scale"`
	SleepQuality int    `json:"sleep_quality"`
	StressLevel  int    `json:"stress_level"`
	Mood         string `json:"mood"`
}

// CheckInAnalysis is the full analysis returned after a successful check-in
type CheckInAnalysis struct {
	WellnessScore      float64        `json:"wellness_score"`
	DataInsights       DataInsights   `json:"data_insights"`
	SupportiveInsights string         `json:"supportive_insights"`
	Trends             RecentTrend    `json:"trends"`
	Summary            CheckInSummary `json:"summary"`
	Timestamp          time.Time      `json:"timestamp"`
	CheckinID          string         `json:"checkin_id"`
}

// StressAnalysis is returned after a stress assessment is scored and stored
type StressAnalysis struct {
	StressScore int       `json:"stress_score"`
	StressLevel string    `json:"stress_level"`
	Summary     string    `json:"summary"`
	Trends      []string  `json:"trends"`
	Timestamp   time.Time `json:"timestamp"`
}

// MetricCorrelations holds the Pearson coefficient for each tracked pair
type MetricCorrelations struct {
	SleepVsFeeling  float64 `json:"sleep_vs_feeling"`
	StressVsFeeling float64 `json:"stress_vs_feeling"`
	SleepVsStress   float64 `json:"sleep_vs_stress"`
}

// CorrelationInterpretation carries the one-line reading of each pair
type CorrelationInterpretation struct {
	SleepVsFeeling  string `json:"sleep_vs_feeling"`
	StressVsFeeling string `json:"stress_vs_feeling"`
	SleepVsStress   string `json:"sleep_vs_stress"`
}

// CorrelationResult is either a full correlation report or, when fewer than
// MinimumRequired records exist, an insufficient-data shape with the true count.
type CorrelationResult struct {
	Message         string                     `json:"message,omitempty"`
	MinimumRequired int                        `json:"minimum_required,omitempty"`
	CurrentCount    int                        `json:"current_count"`
	Correlations    *MetricCorrelations        `json:"correlations,omitempty"`
	Interpretation  *CorrelationInterpretation `json:"interpretation,omitempty"`
	SampleSize      int                        `json:"sample_size,omitempty"`
}

// WeeklyAnalytics is the deterministic analytics computed over one week's
// chronological check-ins.
type WeeklyAnalytics struct {
	StartDate        time.Time
	EndDate          time.Time
	TotalDays        int
	AvgWellnessScore float64
	AvgFeelingScale  float64
	AvgSleepQuality  float64
	AvgStressLevel   float64
	MoodFrequency    map[string]int
	Trend            string
	BestDay          *CheckIn
	ChallengingDay   *CheckIn
	KeyPatterns      []string
	Recommendations  []string
}

// TrendStats aggregates a day window of check-ins for the wellness-trends endpoint
type TrendStats struct {
	AvgWellnessScore float64  `json:"avg_wellness_score"`
	AvgFeelingScale  float64  `json:"avg_feeling_scale"`
	AvgSleepQuality  float64  `json:"avg_sleep_quality"`
	AvgStressLevel   float64  `json:"avg_stress_level"`
	MinWellnessScore float64  `json:"min_wellness_score"`
	MaxWellnessScore float64  `json:"max_wellness_score"`
	TotalCheckins    int      `json:"total_checkins"`
	Moods            []string `json:"moods"`
}

// DailyTrendPoint is one day in the chronological trend series
type DailyTrendPoint struct {
	Date          time.Time `json:"date"`
	WellnessScore float64   `json:"wellness_score"`
	FeelingScale  int       `json:"feeling_scale"`
	SleepQuality  int       `json:"sleep_quality"`
	StressLevel   int       `json:"stress_level"`
	Mood          string    `json:"mood"`
}

// TrendsReport is the wellness-trends endpoint response body
type TrendsReport struct {
	Summary         *TrendStats       `json:"summary"`
	DailyTrends     []DailyTrendPoint `json:"daily_trends"`
	PatternInsights []string          `json:"pattern_insights"`
	Period          string            `json:"period"`
}

// CheckInHistory is one page of a user's past check-ins
type CheckInHistory struct {
	Checkins   []CheckIn  `json:"checkins"`
	Pagination Pagination `json:"pagination"`
}

// Pagination is the envelope for paginated history responses
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasNextPage bool `json:"has_next_page"`
}

// StressInsights aggregates a user's past stress assessments
type StressInsights struct {
	TotalAssessments  int            `json:"total_assessments"`
	AvgStressScore    float64        `json:"avg_stress_score"`
	LevelDistribution map[string]int `json:"level_distribution"`
	LatestLevel       string         `json:"latest_level,omitempty"`
}
