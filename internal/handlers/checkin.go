package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend/internal/apierror"
	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/repository"
	"github.com/mindwell/backend/internal/service"
)

type CheckInHandler struct {
	checkinService service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkinService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		checkinService: checkinService,
	}
}

// Analyze handles POST /api/v1/checkin/analyze
func (h *CheckInHandler) Analyze(c *gin.Context) {
	var sub models.CheckInSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		apierror.WriteValidation(c, service.BindErrorMessage(err))
		return
	}

	if err := service.ValidateCheckIn(&sub); err != nil {
		apierror.WriteValidation(c, err.Error())
		return
	}

	analysis, err := h.checkinService.AnalyzeCheckIn(c.Request.Context(), &sub)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCheckIn) {
			apierror.WriteDuplicateCheckin(c)
			return
		}
		logger.Ctx(c.Request.Context()).Error("check-in analysis failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to process check-in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// QuickMood handles POST /api/v1/checkin/quick-mood
func (h *CheckInHandler) QuickMood(c *gin.Context) {
	var req models.QuickMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteValidation(c, service.BindErrorMessage(err))
		return
	}

	if err := service.ValidateQuickMood(&req); err != nil {
		apierror.WriteValidation(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  service.EncouragingResponse(req.Mood, req.FeelingScale),
		"timestamp": time.Now(),
	})
}

// History handles GET /api/v1/checkin/history/:userId
func (h *CheckInHandler) History(c *gin.Context) {
	userID := c.Param("userId")
	days := intQuery(c, "days", 30)
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	history, err := h.checkinService.History(c.Request.Context(), userID, days, page, limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("check-in history lookup failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to get check-in history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"checkins":   history.Checkins,
		"pagination": history.Pagination,
	})
}

// Trends handles GET /api/v1/checkin/trends/:userId
func (h *CheckInHandler) Trends(c *gin.Context) {
	userID := c.Param("userId")
	days := intQuery(c, "days", 30)

	report, err := h.checkinService.WellnessTrends(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("wellness trends lookup failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to get wellness trends")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trends":  report,
	})
}

// Correlations handles GET /api/v1/checkin/correlations/:userId
func (h *CheckInHandler) Correlations(c *gin.Context) {
	userID := c.Param("userId")
	days := intQuery(c, "days", 30)

	result, err := h.checkinService.CorrelationInsights(c.Request.Context(), userID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("correlation lookup failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to get correlation insights")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"correlations": result,
		"period":       strconv.Itoa(days) + " days",
		"note":         "Correlations indicate patterns, not causation",
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
