package repository

import (
	"reelhub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) (*models.Rating, error)
	GetByMedia(mediaID string) ([]models.Rating, error)
	CountsByMedia(mediaID string) (*models.RatingCounts, error)
	GetAll() ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating atomically: the conflict target is the composite
// (user_id, media_id) unique index, so two concurrent writes from the same
// user can never produce duplicate rows.
func (r *ratingRepository) Upsert(rating *models.Rating) (*models.Rating, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "media_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"rating", "media_kind", "title", "poster_path", "updated_at",
		}),
	}).Create(rating).Error
	if err != nil {
		return nil, err
	}

	// Reload: on the update path the inserted struct's ID and created_at
	// belong to the losing row.
	var stored models.Rating
	err = r.db.Where("user_id = ? AND media_id = ?", rating.UserID, rating.MediaID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByMedia retrieves all ratings for a media item with author info.
func (r *ratingRepository) GetByMedia(mediaID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("media_id = ?", mediaID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CountsByMedia tallies rating rows for a media item, partitioned by value.
func (r *ratingRepository) CountsByMedia(mediaID string) (*models.RatingCounts, error) {
	rows := []struct {
		Rating string
		Count  int64
	}{}

	err := r.db.Model(&models.Rating{}).
		Select("rating, COUNT(*) as count").
		Where("media_id = ?", mediaID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &models.RatingCounts{}
	for _, row := range rows {
		switch row.Rating {
		case models.RatingGood:
			counts.Good = row.Count
		case models.RatingBetter:
			counts.Better = row.Count
		case models.RatingWorst:
			counts.Worst = row.Count
		}
		counts.Total += row.Count
	}
	return counts, nil
}

// GetAll retrieves every stored rating across all media, newest first.
func (r *ratingRepository) GetAll() ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
