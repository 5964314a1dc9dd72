package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/pkg/supabase"
)

const summaryTable = "weekly_summaries"

type weeklySummaryRepository struct {
	client *supabase.Client
}

// NewWeeklySummaryRepository creates a new weekly summary repository
func NewWeeklySummaryRepository(client *supabase.Client) WeeklySummaryRepository {
	return &weeklySummaryRepository{client: client}
}

func summaryData(summary *models.WeeklySummary) map[string]interface{} {
	return map[string]interface{}{
		"user_id":           summary.UserID,
		"week_start_date":   summary.WeekStartDate.Format(time.RFC3339),
		"week_end_date":     summary.WeekEndDate.Format(time.RFC3339),
		"summary":           summary.Summary,
		"daily_checkin_ids": summary.DailyCheckinIDs,
		"last_updated":      summary.LastUpdated.Format(time.RFC3339),
	}
}

func (r *weeklySummaryRepository) GetByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklySummary, error) {
	query := map[string]interface{}{
		"user_id":         fmt.Sprintf("eq.%s", userID),
		"week_start_date": fmt.Sprintf("eq.%s", weekStart.Format(time.RFC3339)),
		"limit":           1,
	}

	body, err := r.client.Query(summaryTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly summary: %w", err)
	}

	var summaries []models.WeeklySummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(summaries) == 0 {
		return nil, nil
	}

	return &summaries[0], nil
}

func (r *weeklySummaryRepository) Upsert(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error) {
	data := summaryData(summary)
	if summary.ID != "" {
		data["id"] = summary.ID
	} else {
		data["id"] = uuid.New().String()
	}

	body, err := r.client.Upsert(summaryTable, data, "user_id,week_start_date")
	if err != nil {
		// ErrConflict passes through untouched so the caller can run its
		// update-only retry
		return nil, err
	}

	var summaries []models.WeeklySummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(summaries) == 0 {
		return nil, fmt.Errorf("no weekly summary returned")
	}

	return &summaries[0], nil
}

func (r *weeklySummaryRepository) Update(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error) {
	query := map[string]interface{}{
		"user_id":         fmt.Sprintf("eq.%s", summary.UserID),
		"week_start_date": fmt.Sprintf("eq.%s", summary.WeekStartDate.Format(time.RFC3339)),
	}

	data := map[string]interface{}{
		"summary":           summary.Summary,
		"daily_checkin_ids": summary.DailyCheckinIDs,
		"last_updated":      summary.LastUpdated.Format(time.RFC3339),
	}

	body, err := r.client.UpdateWhere(summaryTable, query, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update weekly summary: %w", err)
	}

	var summaries []models.WeeklySummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(summaries) == 0 {
		return nil, fmt.Errorf("no weekly summary updated")
	}

	return &summaries[0], nil
}

func (r *weeklySummaryRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(summaryTable, id); err != nil {
		return fmt.Errorf("failed to delete weekly summary: %w", err)
	}
	return nil
}
