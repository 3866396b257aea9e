package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reelhub/internal/catalog"

	"github.com/stretchr/testify/assert"
)

// newStubCatalog wires a MediaHandler to a fake upstream API.
func newStubCatalog(t *testing.T, routes map[string]string) *MediaHandler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_message":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewMediaHandler(catalog.NewClient(srv.URL, "test-key"))
}

func TestGenres_Proxy(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{
		"/genre/movie/list": `{"genres":[{"id":28,"name":"Action"}]}`,
	})
	router := setupRouter()
	router.GET("/genres/:type", handler.Genres)

	req, _ := http.NewRequest("GET", "/genres/movie", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":28,"name":"Action"}]`, w.Body.String())
}

func TestGenres_UpstreamDown(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{})
	router := setupRouter()
	router.GET("/genres/:type", handler.Genres)

	req, _ := http.NewRequest("GET", "/genres/movie", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error fetching genres")
}

func TestDetails_InvalidType(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{})
	router := setupRouter()
	router.GET("/media/:mediaId", handler.Details)

	req, _ := http.NewRequest("GET", "/media/550?type=book", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid type specified")
}

func TestDetails_PassesDocumentThrough(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{
		"/movie/550": `{"id":550,"title":"Fight Club","some_upstream_field":{"nested":true}}`,
	})
	router := setupRouter()
	router.GET("/media/:mediaId", handler.Details)

	req, _ := http.NewRequest("GET", "/media/550?type=movie", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":550,"title":"Fight Club","some_upstream_field":{"nested":true}}`, w.Body.String())
}

func TestVideos_FilteredProxy(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{
		"/tv/1399/videos": `{"results":[
			{"key":"yt1","site":"YouTube","type":"Trailer"},
			{"key":"vm1","site":"Vimeo","type":"Trailer"}
		]}`,
	})
	router := setupRouter()
	router.GET("/media/:mediaId/videos", handler.Videos)

	req, _ := http.NewRequest("GET", "/media/1399/videos?type=tv", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "yt1")
	assert.NotContains(t, w.Body.String(), "vm1")
}

func TestDiscover_DefaultsToMovies(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{
		"/discover/movie": `{"page":1,"total_pages":3,"total_results":60,"results":[{"id":1}]}`,
	})
	router := setupRouter()
	router.GET("/discover", handler.Discover)

	req, _ := http.NewRequest("GET", "/discover", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":1,"total_pages":3,"total_results":60,"results":[{"id":1}]}`, w.Body.String())
}

func TestRandom_UnknownTypeFallsBackToMovie(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{
		"/discover/movie": `{"page":1,"total_pages":1,"total_results":1,"results":[{"id":550,"title":"Fight Club"}]}`,
	})
	router := setupRouter()
	router.GET("/random", handler.Random)

	req, _ := http.NewRequest("GET", "/random?type=podcast", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"media_type":"movie"`)
}

func TestRandom_NoContent(t *testing.T) {
	handler := newStubCatalog(t, map[string]string{
		"/discover/movie": `{"page":1,"total_pages":0,"total_results":0,"results":[]}`,
	})
	router := setupRouter()
	router.GET("/random", handler.Random)

	req, _ := http.NewRequest("GET", "/random?type=movie", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No content found")
}
