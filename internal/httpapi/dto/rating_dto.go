package dto

import (
	"time"

	"reelhub/internal/httpapi/models"
)

// RateRequest: payload for rating a media item
type RateRequest struct {
	Rating     string  `json:"rating" binding:"required,oneof=good better worst"`
	MediaType  string  `json:"mediaType" binding:"required,oneof=movie tv"`
	Title      string  `json:"title" binding:"required"`
	PosterPath *string `json:"posterPath"`
}

// RatingResponse is one stored rating with its author's name.
type RatingResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	MediaID    string    `json:"media_id"`
	MediaKind  string    `json:"media_kind"`
	Title      string    `json:"title"`
	PosterPath *string   `json:"poster_path"`
	Rating     string    `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) RatingResponse {
	return RatingResponse{
		ID:         rating.ID,
		Username:   rating.User.Username,
		MediaID:    rating.MediaID,
		MediaKind:  rating.MediaKind,
		Title:      rating.Title,
		PosterPath: rating.PosterPath,
		Rating:     rating.Value,
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}
}

// MediaRatingsResponse is the per-media tally payload.
type MediaRatingsResponse struct {
	Ratings []RatingResponse    `json:"ratings"`
	Counts  models.RatingCounts `json:"counts"`
}

// GroupedRatings buckets every stored rating by category.
type GroupedRatings struct {
	Good   []RatingResponse `json:"good"`
	Better []RatingResponse `json:"better"`
	Worst  []RatingResponse `json:"worst"`
}

// GroupedRatingsResponse is the global ratings payload.
type GroupedRatingsResponse struct {
	Ratings GroupedRatings `json:"ratings"`
}
