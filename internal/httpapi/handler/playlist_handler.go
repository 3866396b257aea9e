package handler

import (
	"errors"
	"net/http"

	"reelhub/internal/httpapi/dto"
	"reelhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistService service.PlaylistService
}

func NewPlaylistHandler(playlistService service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// RegisterRoutes registers playlist routes. Every route requires a session.
func (h *PlaylistHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	playlists := router.Group("/playlists", requireAuth)
	{
		playlists.POST("", h.Create)
		playlists.GET("", h.List)
		playlists.PUT("/:playlistId", h.Update)
		playlists.DELETE("/:playlistId", h.Delete)
		playlists.POST("/:playlistId/items", h.AddItem)
		playlists.DELETE("/:playlistId/items/:mediaId", h.RemoveItem)
	}
}

// Create creates a new empty playlist
// POST /api/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(userID.(string), req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating playlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "playlist": playlist})
}

// List returns the caller's playlists with their items
// GET /api/playlists
func (h *PlaylistHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	playlists, err := h.playlistService.GetUserPlaylists(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching playlists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "playlists": playlists})
}

// Update renames a playlist
// PUT /api/playlists/:playlistId
func (h *PlaylistHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	playlist, err := h.playlistService.UpdatePlaylist(
		c.Param("playlistId"), userID.(string), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating playlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "playlist": playlist})
}

// Delete removes a playlist and its items
// DELETE /api/playlists/:playlistId
func (h *PlaylistHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	err := h.playlistService.DeletePlaylist(c.Param("playlistId"), userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting playlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Playlist deleted successfully"})
}

// AddItem adds a media item to a playlist
// POST /api/playlists/:playlistId/items
func (h *PlaylistHandler) AddItem(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.AddPlaylistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	playlist, err := h.playlistService.AddItem(c.Param("playlistId"), userID.(string), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlaylistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, service.ErrDuplicateItem):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error adding to playlist"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "playlist": playlist})
}

// RemoveItem drops a media item from a playlist
// DELETE /api/playlists/:playlistId/items/:mediaId
func (h *PlaylistHandler) RemoveItem(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	playlist, err := h.playlistService.RemoveItem(
		c.Param("playlistId"), userID.(string), c.Param("mediaId"))
	if err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error removing from playlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "playlist": playlist})
}
