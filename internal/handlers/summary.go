package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend/internal/apierror"
	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/service"
)

type SummaryHandler struct {
	summaryService service.WeeklySummaryService
}

// NewSummaryHandler creates a new weekly summary handler
func NewSummaryHandler(summaryService service.WeeklySummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// SaveCheckIn handles POST /api/v1/summary/checkin
func (h *SummaryHandler) SaveCheckIn(c *gin.Context) {
	var req models.SaveCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteValidation(c, service.BindErrorMessage(err))
		return
	}

	if err := service.ValidateSaveCheckIn(&req); err != nil {
		apierror.WriteValidation(c, err.Error())
		return
	}

	checkin, err := h.summaryService.SaveDailyCheckIn(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("check-in save failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to save check-in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"checkin": checkin,
	})
}

// WeeklyData handles GET /api/v1/summary/weekly-data/:startDate/:endDate
func (h *SummaryHandler) WeeklyData(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		apierror.WriteValidation(c, "userId query parameter is required")
		return
	}

	start, err := parseDateParam(c.Param("startDate"))
	if err != nil {
		apierror.WriteValidation(c, "startDate must be a valid date (YYYY-MM-DD)")
		return
	}
	end, err := parseDateParam(c.Param("endDate"))
	if err != nil {
		apierror.WriteValidation(c, "endDate must be a valid date (YYYY-MM-DD)")
		return
	}
	if end.Before(start) {
		apierror.WriteValidation(c, "endDate must not be before startDate")
		return
	}
	// include the whole final day
	end = end.Add(24*time.Hour - time.Second)

	checkins, err := h.summaryService.GetWeeklyData(c.Request.Context(), userID, start, end)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("weekly data lookup failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to get weekly data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    checkins,
		"count":   len(checkins),
	})
}

// Generate handles POST /api/v1/summary/generate
func (h *SummaryHandler) Generate(c *gin.Context) {
	var req models.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteValidation(c, service.BindErrorMessage(err))
		return
	}
	if req.UserID == "" {
		apierror.WriteValidation(c, "user_id is required")
		return
	}

	weekStart := service.WeekStart(time.Now())
	if req.WeekStartDate != nil {
		weekStart = *req.WeekStartDate
	}

	summary, err := h.summaryService.GenerateWeeklySummary(c.Request.Context(), req.UserID, weekStart)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("weekly summary generation failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to generate weekly summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"weekly_summary": summary,
		"timestamp":      time.Now(),
	})
}

// QuickMood handles POST /api/v1/summary/quick-mood
func (h *SummaryHandler) QuickMood(c *gin.Context) {
	var req models.MoodCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteValidation(c, service.BindErrorMessage(err))
		return
	}

	if err := service.ValidateMoodCheck(&req); err != nil {
		apierror.WriteValidation(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                   true,
		"response":                  service.QuickMoodResponse(req.Mood, req.Intensity, req.Trigger, req.NeedsSupport),
		"needs_immediate_attention": service.NeedsImmediateAttention(req.Mood, req.Intensity, req.NeedsSupport),
		"timestamp":                 time.Now(),
	})
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
