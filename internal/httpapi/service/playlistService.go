package service

import (
	"errors"

	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/models"
	"reelhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrDuplicateItem    = errors.New("this media is already in the playlist")
)

type PlaylistService interface {
	CreatePlaylist(userID, name, description string) (*models.Playlist, error)
	GetUserPlaylists(userID string) ([]models.Playlist, error)
	UpdatePlaylist(playlistID, userID, name, description string) (*models.Playlist, error)
	DeletePlaylist(playlistID, userID string) error
	AddItem(playlistID, userID string, req dto.AddPlaylistItemRequest) (*models.Playlist, error)
	RemoveItem(playlistID, userID, mediaID string) (*models.Playlist, error)
}

type playlistService struct {
	playlistRepo repository.PlaylistRepository
}

func NewPlaylistService(playlistRepo repository.PlaylistRepository) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo}
}

func (s *playlistService) CreatePlaylist(userID, name, description string) (*models.Playlist, error) {
	playlist := &models.Playlist{
		UserID:      userID,
		Name:        name,
		Description: description,
		Items:       []models.PlaylistItem{},
	}

	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

func (s *playlistService) GetUserPlaylists(userID string) ([]models.Playlist, error) {
	return s.playlistRepo.GetByUser(userID)
}

func (s *playlistService) UpdatePlaylist(playlistID, userID, name, description string) (*models.Playlist, error) {
	playlist, err := s.findOwned(playlistID, userID)
	if err != nil {
		return nil, err
	}

	playlist.Name = name
	playlist.Description = description
	if err := s.playlistRepo.Update(playlist); err != nil {
		return nil, err
	}

	return s.findOwned(playlistID, userID)
}

func (s *playlistService) DeletePlaylist(playlistID, userID string) error {
	err := s.playlistRepo.Delete(playlistID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPlaylistNotFound
	}
	return err
}

// AddItem appends a media item to a playlist. The same (mediaId, mediaType)
// pair can appear at most once per playlist.
func (s *playlistService) AddItem(playlistID, userID string, req dto.AddPlaylistItemRequest) (*models.Playlist, error) {
	playlist, err := s.findOwned(playlistID, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range playlist.Items {
		if item.MediaID == req.MediaID && item.MediaKind == req.MediaType {
			return nil, ErrDuplicateItem
		}
	}

	item := &models.PlaylistItem{
		PlaylistID: playlist.ID,
		MediaID:    req.MediaID,
		MediaKind:  req.MediaType,
		Title:      req.Title,
		PosterPath: req.PosterPath,
	}
	if err := s.playlistRepo.AddItem(item); err != nil {
		return nil, err
	}

	return s.findOwned(playlistID, userID)
}

func (s *playlistService) RemoveItem(playlistID, userID, mediaID string) (*models.Playlist, error) {
	playlist, err := s.findOwned(playlistID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.playlistRepo.RemoveItem(playlist.ID, mediaID); err != nil {
		return nil, err
	}

	return s.findOwned(playlistID, userID)
}

func (s *playlistService) findOwned(playlistID, userID string) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByIDAndUser(playlistID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return playlist, nil
}
