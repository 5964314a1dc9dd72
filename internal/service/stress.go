package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/repository"
	"github.com/mindwell/backend/pkg/gemini"
)

type stressService struct {
	stressRepo repository.StressAssessmentRepository
	insights   InsightClient
}

// NewStressService creates a new stress assessment service
func NewStressService(stressRepo repository.StressAssessmentRepository, insights InsightClient) StressService {
	return &stressService{
		stressRepo: stressRepo,
		insights:   insights,
	}
}

// AnalyzeStress scores one validated questionnaire, asks the AI collaborator
// for a structured reading of it and persists the assessment. A failed or
// malformed AI response degrades to safe defaults, never to an error.
func (s *stressService) AnalyzeStress(ctx context.Context, sub *models.StressSubmission) (*models.StressAnalysis, error) {
	now := time.Now()

	score := CalculateStressScore(sub.Answers)
	level := StressLevelLabel(score)

	var raw string
	if s.insights != nil {
		genCtx, cancel := context.WithTimeout(ctx, gemini.RequestTimeout)
		defer cancel()

		text, err := s.insights.Generate(genCtx, StressPrompt(sub, score))
		if err != nil {
			logger.Ctx(ctx).Warn("stress analysis generation failed, using defaults", logger.Err(err))
		} else {
			raw = text
		}
	}
	parsed := gemini.ParseStructured(raw)

	assessment := &models.StressAssessment{
		UserID:      sub.UserID,
		Answers:     sub.Answers,
		StressScore: score,
		StressLevel: level,
		Analysis:    parsed.Summary,
		Trends:      parsed.Trends,
		CreatedAt:   now,
	}

	if _, err := s.stressRepo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to save stress assessment: %w", err)
	}

	return &models.StressAnalysis{
		StressScore: score,
		StressLevel: level,
		Summary:     parsed.Summary,
		Trends:      parsed.Trends,
		Timestamp:   now,
	}, nil
}

func (s *stressService) History(ctx context.Context, userID string, limit int) ([]models.StressAssessment, error) {
	assessments, err := s.stressRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get stress assessments: %w", err)
	}
	return assessments, nil
}

// Insights aggregates a user's past assessments into distribution stats.
func (s *stressService) Insights(ctx context.Context, userID string) (*models.StressInsights, error) {
	assessments, err := s.stressRepo.GetByUserID(ctx, userID, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to get stress assessments: %w", err)
	}

	insights := &models.StressInsights{
		TotalAssessments:  len(assessments),
		LevelDistribution: make(map[string]int),
	}
	if len(assessments) == 0 {
		return insights, nil
	}

	total := 0
	for _, a := range assessments {
		total += a.StressScore
		insights.LevelDistribution[a.StressLevel]++
	}
	insights.AvgStressScore = round1(float64(total) / float64(len(assessments)))
	insights.LatestLevel = assessments[0].StressLevel

	return insights, nil
}
