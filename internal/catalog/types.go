package catalog

import "encoding/json"

// Genre is a movie/TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// Provider is a streaming provider entry.
type Provider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

type providerListResponse struct {
	Results []Provider `json:"results"`
}

// Video is a single video attached to a media item.
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

type videoListResponse struct {
	Results []Video `json:"results"`
}

// PagedResults is the paged envelope shared by discover and search
// endpoints. Item payloads pass through unmodified.
type PagedResults struct {
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
	Results      []json.RawMessage `json:"results"`
}

// DiscoverParams are the filters accepted by the discover endpoint. Empty
// fields are omitted from the upstream query.
type DiscoverParams struct {
	Type              string // movie | tv
	Genre             string
	Year              string
	Rating            string // minimum vote average
	Language          string
	Cast              string
	SortBy            string
	Certification     string
	StreamingProvider string
	Page              string
}
