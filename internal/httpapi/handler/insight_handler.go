package handler

import (
	"net/http"

	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightService service.InsightService
}

func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// RegisterRoutes registers the insight generation route
func (h *InsightHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.POST("/generate-insights", requireAuth, h.Generate)
}

// Generate produces playlist insight text from a user prompt
// POST /api/generate-insights
func (h *InsightHandler) Generate(c *gin.Context) {
	var req dto.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	content, err := h.insightService.GenerateInsight(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error generating insights"})
		return
	}

	c.JSON(http.StatusOK, dto.InsightResponse{Success: true, Content: content})
}
