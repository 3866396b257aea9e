package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categorical rating values. Distinct from the 1-10 review rating.
const (
	RatingGood   = "good"
	RatingBetter = "better"
	RatingWorst  = "worst"
)

// ValidRatingValue reports whether value is one of the three rating buckets.
func ValidRatingValue(value string) bool {
	return value == RatingGood || value == RatingBetter || value == RatingWorst
}

// Rating is a user's categorical judgment of a media item. The composite
// unique index on (user_id, media_id) backs the atomic upsert: one row per
// user per media item, enforced by the storage layer.
type Rating struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_media" json:"user_id"`
	MediaID    string    `gorm:"not null;uniqueIndex:idx_ratings_user_media;index" json:"media_id"`
	MediaKind  string    `gorm:"not null" json:"media_kind"`
	Title      string    `gorm:"not null" json:"title"`
	PosterPath *string   `json:"poster_path"`
	Value      string    `gorm:"column:rating;not null;check:rating IN ('good','better','worst')" json:"rating"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingCounts is the per-media tally of rating rows, partitioned by value.
type RatingCounts struct {
	Good   int64 `json:"good"`
	Better int64 `json:"better"`
	Worst  int64 `json:"worst"`
	Total  int64 `json:"total"`
}
