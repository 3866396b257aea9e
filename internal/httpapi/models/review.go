package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media kinds accepted on the wire. The catalog API uses the same values.
const (
	MediaKindMovie = "movie"
	MediaKindTV    = "tv"
)

// ValidMediaKind reports whether kind is one of the two supported media kinds.
func ValidMediaKind(kind string) bool {
	return kind == MediaKindMovie || kind == MediaKindTV
}

// Review is a user-submitted review of a media item. Reviews are immutable
// once created: there is no update or delete path.
type Review struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"`
	MediaID   string    `gorm:"not null;index:idx_reviews_media" json:"media_id"`
	MediaKind string    `gorm:"not null;index:idx_reviews_media" json:"media_kind"`
	Content   string    `gorm:"not null" json:"content"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}
