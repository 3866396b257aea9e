package service

import (
	"context"
	"errors"
	"fmt"

	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/models"
	"reelhub/internal/httpapi/repository"
	"reelhub/internal/sentiment"
)

var ErrInvalidMediaKind = errors.New("invalid media type")

// SentimentScorer scores one batch of review texts for one media item.
// Satisfied by *sentiment.Pool.
type SentimentScorer interface {
	Analyze(ctx context.Context, key string, texts []string) (*sentiment.Batch, error)
}

type ReviewService interface {
	CreateReview(userID, username, mediaID, mediaKind, content string, rating int) (*models.Review, error)
	GetMediaReviews(ctx context.Context, mediaID, mediaKind string) (*dto.MediaReviewsResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	scorer     SentimentScorer
}

func NewReviewService(reviewRepo repository.ReviewRepository, scorer SentimentScorer) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		scorer:     scorer,
	}
}

// CreateReview stores a new review for a media item.
func (s *reviewService) CreateReview(userID, username, mediaID, mediaKind, content string, rating int) (*models.Review, error) {
	if !models.ValidMediaKind(mediaKind) {
		return nil, ErrInvalidMediaKind
	}

	review := &models.Review{
		UserID:    userID,
		Username:  username,
		MediaID:   mediaID,
		MediaKind: mediaKind,
		Content:   content,
		Rating:    rating,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	return review, nil
}

// GetMediaReviews returns the reviews for a media item merged with one
// sentiment result per review, order-aligned, plus the batch summary.
//
// No reviews is the defined empty state, not an error. A scorer failure
// discards the whole response: no partial sentiment data is ever returned.
func (s *reviewService) GetMediaReviews(ctx context.Context, mediaID, mediaKind string) (*dto.MediaReviewsResponse, error) {
	if !models.ValidMediaKind(mediaKind) {
		return nil, ErrInvalidMediaKind
	}

	reviews, err := s.reviewRepo.GetByMedia(mediaID, mediaKind)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	if len(reviews) == 0 {
		return &dto.MediaReviewsResponse{
			Reviews:          []dto.ReviewWithSentiment{},
			SentimentSummary: sentiment.EmptySummary(),
		}, nil
	}

	// One ordered batch per request; the scorer's results stay aligned with
	// the store's retrieval order.
	texts := make([]string, len(reviews))
	for i, review := range reviews {
		texts[i] = review.Content
	}

	key := fmt.Sprintf("%s:%s", mediaKind, mediaID)
	batch, err := s.scorer.Analyze(ctx, key, texts)
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis failed: %w", err)
	}

	merged := make([]dto.ReviewWithSentiment, len(reviews))
	for i := range reviews {
		merged[i] = dto.FromModelToReviewWithSentiment(&reviews[i], batch.Reviews[i])
	}

	return &dto.MediaReviewsResponse{
		Reviews:          merged,
		SentimentSummary: batch.Overall,
	}, nil
}
