package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/pkg/supabase"
)

const checkinTable = "daily_checkins"

type checkInRepository struct {
	client *supabase.Client
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(client *supabase.Client) CheckInRepository {
	return &checkInRepository{client: client}
}

func checkinData(checkin *models.CheckIn) map[string]interface{} {
	data := map[string]interface{}{
		"user_id":        checkin.UserID,
		"date":           checkin.Date.Format(time.RFC3339),
		"wellness_score": checkin.WellnessScore,
		"feeling_scale":  checkin.FeelingScale,
		"mood":           checkin.Mood,
		"sleep_quality":  checkin.SleepQuality,
		"stress_level":   checkin.StressLevel,
		"timestamp":      checkin.Timestamp.Format(time.RFC3339),
	}

	if checkin.ID != "" {
		data["id"] = checkin.ID
	}
	if len(checkin.Activities) > 0 {
		data["activities"] = checkin.Activities
	}
	if checkin.Notes != "" {
		data["notes"] = checkin.Notes
	}

	return data
}

func (r *checkInRepository) Create(ctx context.Context, checkin *models.CheckIn) (*models.CheckIn, error) {
	if checkin.ID == "" {
		checkin.ID = uuid.New().String()
	}

	body, err := r.client.Insert(checkinTable, checkinData(checkin))
	if err != nil {
		if errors.Is(err, supabase.ErrConflict) {
			return nil, ErrDuplicateCheckIn
		}
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	var checkins []models.CheckIn
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(checkins) == 0 {
		return nil, fmt.Errorf("no check-in returned")
	}

	return &checkins[0], nil
}

func (r *checkInRepository) Upsert(ctx context.Context, checkin *models.CheckIn) (*models.CheckIn, error) {
	if checkin.ID == "" {
		checkin.ID = uuid.New().String()
	}

	body, err := r.client.Upsert(checkinTable, checkinData(checkin), "user_id,date")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	var checkins []models.CheckIn
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(checkins) == 0 {
		return nil, fmt.Errorf("no check-in returned")
	}

	return &checkins[0], nil
}

func (r *checkInRepository) GetRecent(ctx context.Context, userID string, limit int) ([]models.CheckIn, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.desc",
		"limit":   limit,
	}

	body, err := r.client.Query(checkinTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent check-ins: %w", err)
	}

	var checkins []models.CheckIn
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return checkins, nil
}

func (r *checkInRepository) GetByDateRange(ctx context.Context, userID string, start, end time.Time, ascending bool) ([]models.CheckIn, error) {
	order := "date.desc"
	if ascending {
		order = "date.asc"
	}

	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(date.gte.%s,date.lte.%s)", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		"order":   order,
	}

	body, err := r.client.Query(checkinTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-ins: %w", err)
	}

	var checkins []models.CheckIn
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return checkins, nil
}

func (r *checkInRepository) GetHistory(ctx context.Context, userID string, since time.Time, limit, offset int) ([]models.CheckIn, int, error) {
	filter := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", since.Format(time.RFC3339)),
	}

	total, err := r.client.Count(checkinTable, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count check-ins: %w", err)
	}

	query := map[string]interface{}{
		"user_id": filter["user_id"],
		"date":    filter["date"],
		"order":   "date.desc",
		"limit":   limit,
		"offset":  offset,
	}

	body, err := r.client.Query(checkinTable, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get check-in history: %w", err)
	}

	var checkins []models.CheckIn
	if err := json.Unmarshal(body, &checkins); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return checkins, total, nil
}
