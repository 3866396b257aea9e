package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	imageBaseURL = "https://image.tmdb.org/t/p"

	// Client-side politeness limit. TMDB allows roughly 50 req/s.
	rateLimit = 40
	rateBurst = 10
)

// Video types surfaced by the videos endpoint. Everything else is dropped.
var wantedVideoTypes = map[string]bool{
	"Trailer":           true,
	"Teaser":            true,
	"Featurette":        true,
	"Behind the Scenes": true,
}

// Client is an HTTP client for the TMDB catalog API. Every operation is a
// single request with the API key appended as a query parameter.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new catalog API client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Genres fetches the genre list for the given media type.
func (c *Client) Genres(ctx context.Context, mediaType string) ([]Genre, error) {
	var response genreListResponse
	err := c.doRequest(ctx, fmt.Sprintf("/genre/%s/list", mediaType), url.Values{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}
	return response.Genres, nil
}

// WatchProviders fetches streaming providers for the given media type.
func (c *Client) WatchProviders(ctx context.Context, mediaType string) ([]Provider, error) {
	params := url.Values{}
	params.Set("watch_region", "US")

	var response providerListResponse
	err := c.doRequest(ctx, fmt.Sprintf("/watch/providers/%s", mediaType), params, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch providers: %w", err)
	}
	return response.Results, nil
}

// Discover fetches filtered movies or TV shows.
func (c *Client) Discover(ctx context.Context, p DiscoverParams) (*PagedResults, error) {
	params := url.Values{}
	setIfPresent(params, "with_genres", p.Genre)
	setIfPresent(params, "primary_release_year", p.Year)
	setIfPresent(params, "vote_average.gte", p.Rating)
	setIfPresent(params, "with_original_language", p.Language)
	setIfPresent(params, "with_cast", p.Cast)
	params.Set("watch_region", "US")

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params.Set("sort_by", sortBy)

	page := p.Page
	if page == "" {
		page = "1"
	}
	params.Set("page", page)

	// Certification is expressed differently for movies and TV
	if p.Certification != "" {
		if p.Type == "movie" {
			params.Set("certification_country", "US")
			params.Set("certification", p.Certification)
		} else if p.Type == "tv" {
			params.Set("content_rating", p.Certification)
		}
	}

	if p.StreamingProvider != "" {
		params.Set("with_watch_providers", p.StreamingProvider)
	}

	var response PagedResults
	err := c.doRequest(ctx, fmt.Sprintf("/discover/%s", p.Type), params, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to discover media: %w", err)
	}
	return &response, nil
}

// SearchPerson searches for cast/crew by name.
func (c *Client) SearchPerson(ctx context.Context, query string) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)

	var response PagedResults
	err := c.doRequest(ctx, "/search/person", params, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to search person: %w", err)
	}
	return response.Results, nil
}

// SearchMulti searches movies, TV shows and people in one call.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)

	var response PagedResults
	err := c.doRequest(ctx, "/search/multi", params, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to search media: %w", err)
	}
	return response.Results, nil
}

// Details fetches the full detail document for one media item. The payload
// is passed through untouched.
func (c *Client) Details(ctx context.Context, mediaType, id string) (json.RawMessage, error) {
	var response json.RawMessage
	err := c.doRequest(ctx, fmt.Sprintf("/%s/%s", mediaType, id), url.Values{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media details: %w", err)
	}
	return response, nil
}

// Videos fetches videos for a media item, keeping only YouTube trailers,
// teasers, featurettes and behind-the-scenes entries.
func (c *Client) Videos(ctx context.Context, mediaType, id string) ([]Video, error) {
	var response videoListResponse
	err := c.doRequest(ctx, fmt.Sprintf("/%s/%s/videos", mediaType, id), url.Values{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	videos := make([]Video, 0, len(response.Results))
	for _, v := range response.Results {
		if wantedVideoTypes[v.Type] && v.Site == "YouTube" {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

// Recommendations fetches recommendations for a media item.
func (c *Client) Recommendations(ctx context.Context, mediaType, id string) (json.RawMessage, error) {
	var response json.RawMessage
	err := c.doRequest(ctx, fmt.Sprintf("/%s/%s/recommendations", mediaType, id), url.Values{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	return response, nil
}

// Random picks one random popular item of the requested type. "animation"
// narrows a movie discover call to the animation genre.
func (c *Client) Random(ctx context.Context, mediaType string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("page", fmt.Sprintf("%d", rand.Intn(500)+1))
	params.Set("include_adult", "false")
	params.Set("vote_count.gte", "100")

	discoverType := mediaType
	if mediaType == "animation" {
		discoverType = "movie"
		params.Set("with_genres", "16")
		params.Set("with_original_language", "en|ja")
	}
	if mediaType == "movie" || mediaType == "animation" {
		params.Set("vote_average.gte", "6.0")
	}

	var response PagedResults
	err := c.doRequest(ctx, fmt.Sprintf("/discover/%s", discoverType), params, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random media: %w", err)
	}
	if len(response.Results) == 0 {
		return nil, ErrNoContent
	}

	var item map[string]interface{}
	pick := response.Results[rand.Intn(len(response.Results))]
	if err := json.Unmarshal(pick, &item); err != nil {
		return nil, fmt.Errorf("failed to decode random media: %w", err)
	}

	item["media_type"] = mediaType
	item["backdrop_url"] = imageURL(item["backdrop_path"], "original")
	item["poster_url"] = imageURL(item["poster_path"], "w500")

	return item, nil
}

// ErrNoContent is returned when a random pick lands on an empty page.
var ErrNoContent = fmt.Errorf("no content found")

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func imageURL(path interface{}, size string) interface{} {
	s, ok := path.(string)
	if !ok || s == "" {
		return nil
	}
	return fmt.Sprintf("%s/%s%s", imageBaseURL, size, s)
}

// doRequest performs a rate-limited HTTP request and decodes the JSON body.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	params.Set("api_key", c.apiKey)
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ReelHub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
