package service

import (
	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/models"
	"reelhub/internal/httpapi/repository"
)

type RatingService interface {
	RateMedia(userID, mediaID string, req dto.RateRequest) (*dto.RatingResponse, error)
	GetMediaRatings(mediaID string) (*dto.MediaRatingsResponse, error)
	GetGroupedRatings() (*dto.GroupedRatingsResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, userRepo repository.UserRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
	}
}

// RateMedia upserts the user's categorical rating for a media item. A repeat
// rating from the same user replaces the stored value in place; no history
// of prior values is kept.
func (s *ratingService) RateMedia(userID, mediaID string, req dto.RateRequest) (*dto.RatingResponse, error) {
	rating := &models.Rating{
		UserID:     userID,
		MediaID:    mediaID,
		MediaKind:  req.MediaType,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		Value:      req.Rating,
	}

	stored, err := s.ratingRepo.Upsert(rating)
	if err != nil {
		return nil, err
	}

	if user, err := s.userRepo.FindByID(userID); err == nil {
		stored.User = *user
	}

	response := dto.FromModelToRatingResponse(stored)
	return &response, nil
}

// GetMediaRatings returns the stored ratings for one media item together
// with counts per category and a total.
func (s *ratingService) GetMediaRatings(mediaID string) (*dto.MediaRatingsResponse, error) {
	ratings, err := s.ratingRepo.GetByMedia(mediaID)
	if err != nil {
		return nil, err
	}

	counts, err := s.ratingRepo.CountsByMedia(mediaID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, dto.FromModelToRatingResponse(&ratings[i]))
	}

	return &dto.MediaRatingsResponse{
		Ratings: responses,
		Counts:  *counts,
	}, nil
}

// GetGroupedRatings returns every stored rating across all media, bucketed
// by category, newest first within each bucket.
func (s *ratingService) GetGroupedRatings() (*dto.GroupedRatingsResponse, error) {
	ratings, err := s.ratingRepo.GetAll()
	if err != nil {
		return nil, err
	}

	grouped := dto.GroupedRatings{
		Good:   []dto.RatingResponse{},
		Better: []dto.RatingResponse{},
		Worst:  []dto.RatingResponse{},
	}

	for i := range ratings {
		response := dto.FromModelToRatingResponse(&ratings[i])
		switch ratings[i].Value {
		case models.RatingGood:
			grouped.Good = append(grouped.Good, response)
		case models.RatingBetter:
			grouped.Better = append(grouped.Better, response)
		case models.RatingWorst:
			grouped.Worst = append(grouped.Worst, response)
		}
	}

	return &dto.GroupedRatingsResponse{Ratings: grouped}, nil
}
