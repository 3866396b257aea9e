package dto

import (
	"time"

	"reelhub/internal/httpapi/models"
	"reelhub/internal/sentiment"
)

// CreateReviewRequest: payload for submitting a review
type CreateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=10"`
	Type    string `json:"type" binding:"required,oneof=movie tv"`
}

// AuthorDetails carries the star rating alongside the author name.
type AuthorDetails struct {
	Rating   int    `json:"rating"`
	Username string `json:"username"`
}

// ReviewWithSentiment is one review merged with its positionally-aligned
// sentiment result.
type ReviewWithSentiment struct {
	ID            string           `json:"id"`
	Author        string           `json:"author"`
	Content       string           `json:"content"`
	CreatedAt     time.Time        `json:"created_at"`
	AuthorDetails AuthorDetails    `json:"author_details"`
	Sentiment     sentiment.Result `json:"sentiment"`
}

// MediaReviewsResponse is the reviews endpoint payload. With no stored
// reviews, Reviews is an empty list and the summary is all zeroes.
type MediaReviewsResponse struct {
	Reviews          []ReviewWithSentiment `json:"reviews"`
	SentimentSummary sentiment.Summary     `json:"sentiment_summary"`
}

// FromModelToReviewWithSentiment merges a stored review with its sentiment result.
func FromModelToReviewWithSentiment(review *models.Review, result sentiment.Result) ReviewWithSentiment {
	return ReviewWithSentiment{
		ID:        review.ID,
		Author:    review.Username,
		Content:   review.Content,
		CreatedAt: review.CreatedAt,
		AuthorDetails: AuthorDetails{
			Rating:   review.Rating,
			Username: review.Username,
		},
		Sentiment: result,
	}
}
