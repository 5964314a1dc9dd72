package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/backend/internal/apierror"
	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/models"
	"github.com/mindwell/backend/internal/service"
)

type StressHandler struct {
	stressService service.StressService
}

// NewStressHandler creates a new stress assessment handler
func NewStressHandler(stressService service.StressService) *StressHandler {
	return &StressHandler{
		stressService: stressService,
	}
}

// Analyze handles POST /api/v1/stress/analyze
func (h *StressHandler) Analyze(c *gin.Context) {
	var sub models.StressSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		apierror.WriteValidation(c, service.BindErrorMessage(err))
		return
	}

	if err := service.ValidateStressSubmission(&sub); err != nil {
		apierror.WriteValidation(c, err.Error())
		return
	}

	analysis, err := h.stressService.AnalyzeStress(c.Request.Context(), &sub)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("stress analysis failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to process stress assessment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// History handles GET /api/v1/stress/history/:userId
func (h *StressHandler) History(c *gin.Context) {
	userID := c.Param("userId")
	limit := intQuery(c, "limit", 10)

	assessments, err := h.stressService.History(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("stress history lookup failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to get stress history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assessments": assessments,
		"count":       len(assessments),
	})
}

// Insights handles GET /api/v1/stress/insights/:userId
func (h *StressHandler) Insights(c *gin.Context) {
	userID := c.Param("userId")

	insights, err := h.stressService.Insights(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("stress insights lookup failed", logger.Err(err))
		apierror.WriteInternal(c, "Failed to get stress insights")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"insights": insights,
	})
}
