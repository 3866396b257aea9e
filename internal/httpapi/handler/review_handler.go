package handler

import (
	"errors"
	"net/http"

	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes. Reading reviews is public,
// submitting one requires a session.
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.GET("/media/:mediaId/reviews", h.List)
	router.POST("/media/:mediaId/reviews", requireAuth, h.Create)
}

// Create stores a new review for a media item
// POST /api/media/:mediaId/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	username := c.GetString("username")

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(
		userID.(string), username, c.Param("mediaId"), req.Type, req.Content, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMediaKind) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error submitting review",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": review})
}

// List returns the reviews for a media item with per-review sentiment and a
// batch summary
// GET /api/media/:mediaId/reviews?type=movie|tv
func (h *ReviewHandler) List(c *gin.Context) {
	response, err := h.reviewService.GetMediaReviews(
		c.Request.Context(), c.Param("mediaId"), c.Query("type"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidMediaKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type specified"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing sentiment analysis"})
		return
	}

	c.JSON(http.StatusOK, response)
}
