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

const stressTable = "stress_assessments"

type stressAssessmentRepository struct {
	client *supabase.Client
}

// NewStressAssessmentRepository creates a new stress assessment repository
func NewStressAssessmentRepository(client *supabase.Client) StressAssessmentRepository {
	return &stressAssessmentRepository{client: client}
}

func (r *stressAssessmentRepository) Create(ctx context.Context, assessment *models.StressAssessment) (*models.StressAssessment, error) {
	if assessment.ID == "" {
		assessment.ID = uuid.New().String()
	}

	data := map[string]interface{}{
		"id":           assessment.ID,
		"user_id":      assessment.UserID,
		"answers":      assessment.Answers,
		"stress_score": assessment.StressScore,
		"stress_level": assessment.StressLevel,
		"analysis":     assessment.Analysis,
		"created_at":   assessment.CreatedAt.Format(time.RFC3339),
	}

	if assessment.Trends != nil {
		data["trends"] = assessment.Trends
	} else {
		data["trends"] = []string{}
	}

	body, err := r.client.Insert(stressTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create stress assessment: %w", err)
	}

	var assessments []models.StressAssessment
	if err := json.Unmarshal(body, &assessments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(assessments) == 0 {
		return nil, fmt.Errorf("no stress assessment returned")
	}

	return &assessments[0], nil
}

func (r *stressAssessmentRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.StressAssessment, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "created_at.desc",
		"limit":   limit,
	}

	body, err := r.client.Query(stressTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get stress assessments: %w", err)
	}

	var assessments []models.StressAssessment
	if err := json.Unmarshal(body, &assessments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return assessments, nil
}
