package handler

import (
	"errors"
	"net/http"

	"reelhub/internal/catalog"
	"reelhub/internal/httpapi/models"

	"github.com/gin-gonic/gin"
)

// MediaHandler proxies catalog lookups to the external media API. Every
// operation is a single forwarded request with light parameter remapping.
type MediaHandler struct {
	client *catalog.Client
}

func NewMediaHandler(client *catalog.Client) *MediaHandler {
	return &MediaHandler{client: client}
}

// RegisterRoutes registers the public catalog routes
func (h *MediaHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/genres/:type", h.Genres)
	router.GET("/streaming-providers/:type", h.StreamingProviders)
	router.GET("/discover", h.Discover)
	router.GET("/search/person", h.SearchPerson)
	router.GET("/random", h.Random)
	router.GET("/media", h.Search)
	router.GET("/media/:mediaId", h.Details)
	router.GET("/media/:mediaId/videos", h.Videos)
	router.GET("/media/:mediaId/recommendations", h.Recommendations)
}

// Genres proxies the genre list for movies or TV shows
// GET /api/genres/:type
func (h *MediaHandler) Genres(c *gin.Context) {
	genres, err := h.client.Genres(c.Request.Context(), c.Param("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching genres"})
		return
	}
	c.JSON(http.StatusOK, genres)
}

// StreamingProviders proxies the watch-provider list
// GET /api/streaming-providers/:type
func (h *MediaHandler) StreamingProviders(c *gin.Context) {
	providers, err := h.client.WatchProviders(c.Request.Context(), c.Param("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching streaming providers"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// Discover proxies filtered movie/TV discovery
// GET /api/discover
func (h *MediaHandler) Discover(c *gin.Context) {
	params := catalog.DiscoverParams{
		Type:              c.DefaultQuery("type", "movie"),
		Genre:             c.Query("genre"),
		Year:              c.Query("year"),
		Rating:            c.Query("rating"),
		Language:          c.Query("language"),
		Cast:              c.Query("cast"),
		SortBy:            c.Query("sort_by"),
		Certification:     c.Query("certification"),
		StreamingProvider: c.Query("streaming_provider"),
		Page:              c.DefaultQuery("page", "1"),
	}

	page, err := h.client.Discover(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":       page.Results,
		"total_pages":   page.TotalPages,
		"total_results": page.TotalResults,
		"page":          page.Page,
	})
}

// SearchPerson proxies cast/crew search
// GET /api/search/person
func (h *MediaHandler) SearchPerson(c *gin.Context) {
	results, err := h.client.SearchPerson(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching for person"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Search proxies multi-search across movies, TV shows and people
// GET /api/media
func (h *MediaHandler) Search(c *gin.Context) {
	results, err := h.client.SearchMulti(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching media"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Details proxies the full detail document for one media item
// GET /api/media/:mediaId?type=movie|tv
func (h *MediaHandler) Details(c *gin.Context) {
	mediaType := c.Query("type")
	if !models.ValidMediaKind(mediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type specified"})
		return
	}

	details, err := h.client.Details(c.Request.Context(), mediaType, c.Param("mediaId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching media details"})
		return
	}
	c.Data(http.StatusOK, "application/json", details)
}

// Videos proxies the filtered video list for one media item
// GET /api/media/:mediaId/videos?type=movie|tv
func (h *MediaHandler) Videos(c *gin.Context) {
	mediaType := c.Query("type")
	if !models.ValidMediaKind(mediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type specified"})
		return
	}

	videos, err := h.client.Videos(c.Request.Context(), mediaType, c.Param("mediaId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Recommendations proxies recommendations for one media item
// GET /api/media/:mediaId/recommendations?type=movie|tv
func (h *MediaHandler) Recommendations(c *gin.Context) {
	mediaType := c.Query("type")
	if !models.ValidMediaKind(mediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type specified"})
		return
	}

	recommendations, err := h.client.Recommendations(c.Request.Context(), mediaType, c.Param("mediaId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recommendations"})
		return
	}
	c.Data(http.StatusOK, "application/json", recommendations)
}

// Random proxies one random popular item
// GET /api/random?type=movie|tv|animation
func (h *MediaHandler) Random(c *gin.Context) {
	mediaType := c.Query("type")
	validMediaTypes := map[string]bool{"movie": true, "tv": true, "animation": true}
	if !validMediaTypes[mediaType] {
		mediaType = "movie"
	}

	item, err := h.client.Random(c.Request.Context(), mediaType)
	if err != nil {
		if errors.Is(err, catalog.ErrNoContent) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No content found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching random content"})
		return
	}
	c.JSON(http.StatusOK, item)
}
