package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playlist is a user-curated list of media items.
type Playlist struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Items []PlaylistItem `json:"items" gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE;"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (Playlist) TableName() string {
	return "playlists"
}

type PlaylistItem struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	PlaylistID string    `gorm:"type:uuid;not null;index" json:"playlist_id"`
	MediaID    string    `gorm:"not null" json:"media_id"`
	MediaKind  string    `gorm:"not null" json:"media_kind"`
	Title      string    `gorm:"not null" json:"title"`
	PosterPath *string   `json:"poster_path"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (i *PlaylistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

func (PlaylistItem) TableName() string {
	return "playlist_items"
}
