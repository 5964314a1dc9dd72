package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend/internal/models"
)

type stubSummaryService struct {
	summary       *models.WeeklySummary
	lastWeekStart time.Time
}

func (s *stubSummaryService) SaveDailyCheckIn(ctx context.Context, req *models.SaveCheckInRequest) (*models.CheckIn, error) {
	return &models.CheckIn{ID: "c-1", UserID: req.UserID}, nil
}

func (s *stubSummaryService) GetWeeklyData(ctx context.Context, userID string, start, end time.Time) ([]models.CheckIn, error) {
	return []models.CheckIn{{ID: "c-1", UserID: userID}}, nil
}

func (s *stubSummaryService) GenerateWeeklySummary(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklySummary, error) {
	s.lastWeekStart = weekStart
	return s.summary, nil
}

func newSummaryRouter(svc *stubSummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewSummaryHandler(svc)
	router.POST("/api/v1/summary/checkin", h.SaveCheckIn)
	router.GET("/api/v1/summary/weekly-data/:startDate/:endDate", h.WeeklyData)
	router.POST("/api/v1/summary/generate", h.Generate)
	router.POST("/api/v1/summary/quick-mood", h.QuickMood)
	return router
}

func TestGenerateRequiresUserID(t *testing.T) {
	router := newSummaryRouter(&stubSummaryService{})

	w := postJSON(t, router, "/api/v1/summary/generate", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "user_id is required" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestGenerateUsesRequestedWeek(t *testing.T) {
	svc := &stubSummaryService{summary: &models.WeeklySummary{ID: "summary-1", UserID: "u1"}}
	router := newSummaryRouter(svc)

	w := postJSON(t, router, "/api/v1/summary/generate",
		`{"user_id":"u1","week_start_date":"2025-06-02T00:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Error("success should be true")
	}
	if _, ok := body["weekly_summary"].(map[string]any); !ok {
		t.Fatalf("missing weekly_summary: %v", body)
	}
	if svc.lastWeekStart.IsZero() {
		t.Error("requested week start was not forwarded")
	}
}

func TestWeeklyDataValidation(t *testing.T) {
	router := newSummaryRouter(&stubSummaryService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary/weekly-data/2025-06-02/2025-06-08", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing userId: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary/weekly-data/not-a-date/2025-06-08?userId=u1", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad start date: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary/weekly-data/2025-06-08/2025-06-02?userId=u1", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("end before start: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary/weekly-data/2025-06-02/2025-06-08?userId=u1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("valid range: status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestSummaryQuickMoodFlagsLowIntensity(t *testing.T) {
	router := newSummaryRouter(&stubSummaryService{})

	w := postJSON(t, router, "/api/v1/summary/quick-mood",
		`{"mood":"hopeless","intensity":2,"needs_support":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["needs_immediate_attention"] != true {
		t.Error("low-intensity hopeless mood should be flagged")
	}

	w = postJSON(t, router, "/api/v1/summary/quick-mood",
		`{"mood":"happy","intensity":8}`)
	body = decodeBody(t, w)
	if body["needs_immediate_attention"] != false {
		t.Error("high-intensity happy mood should not be flagged")
	}
}

func TestSaveCheckInEnvelope(t *testing.T) {
	router := newSummaryRouter(&stubSummaryService{})

	w := postJSON(t, router, "/api/v1/summary/checkin",
		`{"user_id":"u1","wellness_score":6.4,"feeling_scale":7,"mood":"calm","sleep_quality":6,"stress_level":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if _, ok := body["checkin"].(map[string]any); !ok {
		t.Fatalf("missing checkin: %v", body)
	}

	w = postJSON(t, router, "/api/v1/summary/checkin", `{"user_id":"u1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("incomplete payload: status = %d, want 400", w.Code)
	}
}
