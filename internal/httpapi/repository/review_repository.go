package repository

import (
	"reelhub/internal/httpapi/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByMedia(mediaID, mediaKind string) ([]models.Review, error)
	CountByMedia(mediaID, mediaKind string) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a new review. Reviews are never updated or deleted.
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// GetByMedia retrieves all reviews for a media item, newest first. The
// retrieval order is the order the sentiment batch is built in, so it must
// stay stable.
func (r *reviewRepository) GetByMedia(mediaID, mediaKind string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("media_id = ? AND media_kind = ?", mediaID, mediaKind).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CountByMedia(mediaID, mediaKind string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("media_id = ? AND media_kind = ?", mediaID, mediaKind).
		Count(&count).Error
	return count, err
}
