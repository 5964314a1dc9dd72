package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/repository"
)

func TestAnalyzeCheckIn(t *testing.T) {
	checkinRepo := &mockCheckInRepository{}
	insight := &mockInsightClient{response: "You are doing well."}
	svc := NewCheckInService(checkinRepo, insight)

	analysis, err := svc.AnalyzeCheckIn(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// feeling 7, sleep 6, stress 4
	if analysis.WellnessScore != 6.7 {
		t.Errorf("WellnessScore = %v, want 6.7", analysis.WellnessScore)
	}
	if analysis.SupportiveInsights != "You are doing well." {
		t.Errorf("SupportiveInsights = %q", analysis.SupportiveInsights)
	}
	if analysis.CheckinID == "" {
		t.Error("expected the persisted check-in id")
	}
	if checkinRepo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", checkinRepo.createCalls)
	}
	if analysis.Summary.Mood != "happy" {
		t.Errorf("Summary.Mood = %q, want happy", analysis.Summary.Mood)
	}

	// only one record exists, so the trend reports not-enough-data
	if analysis.Trends.Message == "" {
		t.Error("expected not-enough-data trend message")
	}
	if analysis.Trends.DataPoints != 1 {
		t.Errorf("Trends.DataPoints = %d, want 1", analysis.Trends.DataPoints)
	}
}

func TestAnalyzeCheckInDuplicate(t *testing.T) {
	checkinRepo := &mockCheckInRepository{createErr: repository.ErrDuplicateCheckIn}
	svc := NewCheckInService(checkinRepo, &mockInsightClient{response: "ok"})

	_, err := svc.AnalyzeCheckIn(context.Background(), validSubmission())
	if !errors.Is(err, repository.ErrDuplicateCheckIn) {
		t.Errorf("expected ErrDuplicateCheckIn, got %v", err)
	}
}

func TestAnalyzeCheckInFallbackOnInsightError(t *testing.T) {
	checkinRepo := &mockCheckInRepository{}
	insight := &mockInsightClient{err: errors.New("upstream timeout")}
	svc := NewCheckInService(checkinRepo, insight)

	analysis, err := svc.AnalyzeCheckIn(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("insight failure must not fail the request: %v", err)
	}

	want := FallbackSupportiveResponse(7, 6, 4, "happy")
	if analysis.SupportiveInsights != want {
		t.Errorf("SupportiveInsights = %q, want fallback %q", analysis.SupportiveInsights, want)
	}
	if checkinRepo.createCalls != 1 {
		t.Error("check-in should still be persisted on fallback")
	}
}

func TestAnalyzeCheckInNilInsightClient(t *testing.T) {
	svc := NewCheckInService(&mockCheckInRepository{}, nil)

	analysis, err := svc.AnalyzeCheckIn(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.SupportiveInsights == "" {
		t.Error("expected fallback text without an insight client")
	}
}

func TestHistoryPagination(t *testing.T) {
	checkinRepo := &mockCheckInRepository{}
	now := time.Now()
	for i := 0; i < 25; i++ {
		checkinRepo.checkins = append(checkinRepo.checkins, models.CheckIn{
			ID:     "c",
			UserID: "u1",
			Date:   DayStart(now.AddDate(0, 0, -i)),
		})
	}
	svc := NewCheckInService(checkinRepo, nil)

	history, err := svc.History(context.Background(), "u1", 30, 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if history.Pagination.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", history.Pagination.CurrentPage)
	}
	if history.Pagination.TotalCount != 25 {
		t.Errorf("TotalCount = %d, want 25", history.Pagination.TotalCount)
	}
	if history.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", history.Pagination.TotalPages)
	}
	if !history.Pagination.HasNextPage {
		t.Error("page 2 of 3 should have a next page")
	}
	if len(history.Checkins) != 10 {
		t.Errorf("page size = %d, want 10", len(history.Checkins))
	}
}

func TestCorrelationInsightsInsufficientData(t *testing.T) {
	checkinRepo := &mockCheckInRepository{checkins: []models.CheckIn{
		{UserID: "u1", Date: DayStart(time.Now()), SleepQuality: 6, StressLevel: 4, FeelingScale: 7},
	}}
	svc := NewCheckInService(checkinRepo, nil)

	result, err := svc.CorrelationInsights(context.Background(), "u1", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message == "" || result.CurrentCount != 1 {
		t.Errorf("expected insufficient-data shape, got %+v", result)
	}
}
