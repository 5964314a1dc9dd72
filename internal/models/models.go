package models

import "time"

// ValidMoods is the fixed set of accepted mood values, matched
// case-insensitively at validation time.
var ValidMoods = []string{
	"happy",
	"sad",
	"anxious",
	"excited",
	"calm",
	"angry",
	"hopeful",
	"overwhelmed",
	"grateful",
	"frustrated",
	"stressed",
	"energetic",
	"relaxed",
	"tired",
	"joyful",
	"optimistic",
}

// MaxNotesLength bounds the free-text notes on a check-in.
const MaxNotesLength = 500

// CheckIn represents one user's daily self-report. At most one exists per
// (user_id, date); date is the calendar day normalized to local midnight,
// while timestamp records the creation instant.
type CheckIn struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	WellnessScore float64   `json:"wellness_score"`
	FeelingScale  int       `json:"feeling_scale"`
	Mood          string    `json:"mood"`
	SleepQuality  int       `json:"sleep_quality"`
	StressLevel   int       `json:"stress_level"`
	Activities    []string  `json:"activities,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StressAssessment represents one completed 8-question stress instrument.
// Answers maps question id (1..8) to the raw answer value; questions 3 and 7
// are 1-10 sliders, the rest are 1-5 categorical.
type StressAssessment struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Answers     map[int]float64 `json:"answers"`
	StressScore int             `json:"stress_score"`
	StressLevel string          `json:"stress_level"`
	Analysis    string          `json:"analysis"`
	Trends      []string        `json:"trends"`
	CreatedAt   time.Time       `json:"created_at"`
}

// WeeklySummary is the cached rollup for one (user_id, week_start_date).
// DailyCheckinIDs lists the check-ins that contributed, in chronological
// order; together with LastUpdated it drives staleness detection.
type WeeklySummary struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	WeekStartDate   time.Time      `json:"week_start_date"`
	WeekEndDate     time.Time      `json:"week_end_date"`
	Summary         SummaryContent `json:"summary"`
	DailyCheckinIDs []string       `json:"daily_checkin_ids"`
	LastUpdated     time.Time      `json:"last_updated"`
}

// SummaryContent is the nested summary structure stored and returned for a week.
type SummaryContent struct {
	Period   SummaryPeriod   `json:"period"`
	Averages MetricAverages  `json:"averages"`
	Trends   SummaryTrends   `json:"trends"`
	Insights SummaryInsights `json:"insights"`
}

// SummaryPeriod describes the day window a summary covers
type SummaryPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TotalDays int       `json:"total_days"`
}

// MetricAverages holds per-metric means rounded to one decimal place
type MetricAverages struct {
	WellnessScore float64 `json:"wellness_score"`
	FeelingScale  float64 `json:"feeling_scale"`
	SleepQuality  float64 `json:"sleep_quality"`
	StressLevel   float64 `json:"stress_level"`
}

// SummaryTrends holds the week's trend classification and extremes
type SummaryTrends struct {
	MoodFrequency      map[string]int `json:"mood_frequency"`
	WellnessScoreTrend string         `json:"wellness_score_trend"` // improving, declining, stable
	BestDay            *DayRef        `json:"best_day"`
	ChallengingDay     *DayRef        `json:"challenging_day"`
}

// DayRef references a single contributing check-in day
type DayRef struct {
	CheckinID     string    `json:"checkin_id"`
	Date          time.Time `json:"date"`
	WellnessScore float64   `json:"wellness_score"`
	Mood          string    `json:"mood"`
}

// SummaryInsights holds the week's qualitative insight text
type SummaryInsights struct {
	AISummary       string   `json:"ai_summary"`
	KeyPatterns     []string `json:"key_patterns"`
	Recommendations []string `json:"recommendations"`
}

// CheckInSubmission is the raw check-in payload. Metric fields are pointers
// so the validator can distinguish missing fields from zero values.
type CheckInSubmission struct {
	UserID          *string  `json:"user_id"`
	FeelingScale    *float64 `json:"feeling_scale"`
	SleepQuality    *float64 `json:"sleep_quality"`
	StressLevel     *float64 `json:"stress_level"`
	Mood            *string  `json:"mood"`
	RecentEvents    string   `json:"recent_events"`
	AdditionalNotes string   `json:"additional_notes"`
	Activities      []string `json:"activities"`
}

// StressSubmission is the raw stress-assessment payload
type StressSubmission struct {
	UserID  string          `json:"user_id"`
	Answers map[int]float64 `json:"answers"`
	Name    string          `json:"user_name"`
	Age     string          `json:"user_age"`
}

// QuickMoodRequest is the lightweight mood-tracking payload (check-in family)
type QuickMoodRequest struct {
	Mood         string  `json:"mood"`
	FeelingScale float64 `json:"feeling_scale"`
}

// MoodCheckRequest is the summary-family quick mood check payload
type MoodCheckRequest struct {
	Mood         string  `json:"mood"`
	Intensity    float64 `json:"intensity"`
	Trigger      string  `json:"trigger"`
	NeedsSupport bool    `json:"needs_support"`
}

// SaveCheckInRequest is the weekly-family save path: an upsert by
// (user_id, date) carrying a precomputed wellness score.
type SaveCheckInRequest struct {
	UserID        string   `json:"user_id"`
	WellnessScore float64  `json:"wellness_score"`
	FeelingScale  int      `json:"feeling_scale"`
	Mood          string   `json:"mood"`
	SleepQuality  int      `json:"sleep_quality"`
	StressLevel   int      `json:"stress_level"`
	Activities    []string `json:"activities"`
	Notes         string   `json:"notes"`
}

// GenerateSummaryRequest asks for the weekly summary of one user's week.
// WeekStartDate is optional; it defaults to the current week.
type GenerateSummaryRequest struct {
	UserID        string     `json:"user_id"`
	WeekStartDate *time.Time `json:"week_start_date"`
}
