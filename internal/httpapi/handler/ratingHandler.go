package handler

import (
	"net/http"

	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes. Reading tallies is public,
// rating requires a session.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	router.POST("/media/:mediaId/rate", requireAuth, h.Rate)
	router.GET("/media/:mediaId/ratings", h.GetMediaRatings)
	router.GET("/ratings", h.GetGroupedRatings)
}

// Rate upserts the caller's categorical rating for a media item
// POST /api/media/:mediaId/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	rating, err := h.ratingService.RateMedia(userID.(string), c.Param("mediaId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rating": rating})
}

// GetMediaRatings returns stored ratings for one media item plus counts
// GET /api/media/:mediaId/ratings
func (h *RatingHandler) GetMediaRatings(c *gin.Context) {
	response, err := h.ratingService.GetMediaRatings(c.Param("mediaId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"ratings": response.Ratings,
		"counts":  response.Counts,
	})
}

// GetGroupedRatings returns all stored ratings grouped by category
// GET /api/ratings
func (h *RatingHandler) GetGroupedRatings(c *gin.Context) {
	response, err := h.ratingService.GetGroupedRatings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "ratings": response.Ratings})
}
