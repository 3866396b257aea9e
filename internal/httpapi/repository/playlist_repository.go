package repository

import (
	"reelhub/internal/httpapi/models"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *models.Playlist) error
	GetByUser(userID string) ([]models.Playlist, error)
	GetByIDAndUser(playlistID, userID string) (*models.Playlist, error)
	Update(playlist *models.Playlist) error
	Delete(playlistID, userID string) error
	AddItem(item *models.PlaylistItem) error
	RemoveItem(playlistID, mediaID string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *models.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *playlistRepository) GetByUser(userID string) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_items.added_at ASC")
		}).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetByIDAndUser scopes the lookup to the owner, so a foreign playlist ID
// behaves the same as a missing one.
func (r *playlistRepository) GetByIDAndUser(playlistID, userID string) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.Where("id = ? AND user_id = ?", playlistID, userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_items.added_at ASC")
		}).
		First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Update(playlist *models.Playlist) error {
	return r.db.Model(&models.Playlist{}).
		Where("id = ?", playlist.ID).
		Updates(map[string]interface{}{
			"name":        playlist.Name,
			"description": playlist.Description,
		}).Error
}

func (r *playlistRepository) Delete(playlistID, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", playlistID, userID).
		Delete(&models.Playlist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *playlistRepository) AddItem(item *models.PlaylistItem) error {
	return r.db.Create(item).Error
}

func (r *playlistRepository) RemoveItem(playlistID, mediaID string) error {
	return r.db.Where("playlist_id = ? AND media_id = ?", playlistID, mediaID).
		Delete(&models.PlaylistItem{}).Error
}
