package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mindwell/backend/internal/models"
)

// ErrDuplicateCheckIn is returned when a second check-in is inserted for the
// same (user, day). Callers surface it as a distinct recoverable condition,
// never as a generic server error.
var ErrDuplicateCheckIn = errors.New("duplicate check-in")

// CheckInRepository defines the interface for daily check-in data access
type CheckInRepository interface {
	// Create inserts a new check-in. A (user_id, date) uniqueness violation
	// returns ErrDuplicateCheckIn.
	Create(ctx context.Context, checkin *models.CheckIn) (*models.CheckIn, error)
	// Upsert creates or replaces the check-in for (user_id, date)
	Upsert(ctx context.Context, checkin *models.CheckIn) (*models.CheckIn, error)
	// GetRecent returns up to limit check-ins sorted newest first
	GetRecent(ctx context.Context, userID string, limit int) ([]models.CheckIn, error)
	// GetByDateRange returns check-ins inside [start, end]
	GetByDateRange(ctx context.Context, userID string, start, end time.Time, ascending bool) ([]models.CheckIn, error)
	// GetHistory returns a page of check-ins since the given instant, newest
	// first, along with the total matching count
	GetHistory(ctx context.Context, userID string, since time.Time, limit, offset int) ([]models.CheckIn, int, error)
}

// StressAssessmentRepository defines the interface for stress assessment data access
type StressAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.StressAssessment) (*models.StressAssessment, error)
	// GetByUserID returns up to limit assessments sorted newest first
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.StressAssessment, error)
}

// WeeklySummaryRepository defines the interface for cached weekly summaries.
// At most one row exists per (user_id, week_start_date).
type WeeklySummaryRepository interface {
	// GetByUserAndWeek returns the cached summary, or (nil, nil) when absent
	GetByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklySummary, error)
	// Upsert writes the summary keyed on (user_id, week_start_date). A lost
	// race against a concurrent writer surfaces as supabase.ErrConflict.
	Upsert(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error)
	// Update rewrites an existing summary row without inserting
	Update(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error)
	Delete(ctx context.Context, id string) error
}
