package dto

// CreatePlaylistRequest: payload for creating a playlist
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdatePlaylistRequest: payload for renaming a playlist
type UpdatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// AddPlaylistItemRequest: payload for adding a media item to a playlist
type AddPlaylistItemRequest struct {
	MediaID    string  `json:"mediaId" binding:"required"`
	MediaType  string  `json:"mediaType" binding:"required,oneof=movie tv"`
	Title      string  `json:"title" binding:"required"`
	PosterPath *string `json:"posterPath"`
}
