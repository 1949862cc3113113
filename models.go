package grokipedia

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/grokipedia/grokipedia-go/apierr"
)

// SearchResult is one entry of a full-text search response.
type SearchResult struct {
	TitleHighlights   []any   `json:"titleHighlights"`
	SnippetHighlights []any   `json:"snippetHighlights"`
	Slug              string  `json:"slug" validate:"required"`
	Title             string  `json:"title" validate:"required"`
	Snippet           string  `json:"snippet"`
	RelevanceScore    float64 `json:"relevanceScore"`
	ViewCount         string  `json:"viewCount"`
}

// SearchResponse is the payload of the full-text search endpoint. Results
// preserve the order of the raw payload.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"dive"`
}

// Citation is one source reference attached to a page.
type Citation struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Favicon     string `json:"favicon"`
}

// Page is a full article record with citations and metadata.
type Page struct {
	Slug        string         `json:"slug" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Content     string         `json:"content"`
	Description string         `json:"description"`
	Citations   []Citation     `json:"citations" validate:"dive"`
	Images      []any          `json:"images"`
	FixedIssues []any          `json:"fixedIssues"`
	Metadata    map[string]any `json:"metadata"`
	Stats       map[string]any `json:"stats"`
	LinkedPages []any          `json:"linkedPages"`
}

// PageResponse is the payload of the page endpoint.
type PageResponse struct {
	Page  Page `json:"page" validate:"required"`
	Found bool `json:"found"`
}

// ConstantsResponse is the flat configuration record of the constants
// endpoint.
type ConstantsResponse struct {
	AccountURL string `json:"accountUrl" validate:"required"`
	GrokComURL string `json:"grokComUrl" validate:"required"`
	AppEnv     string `json:"appEnv" validate:"required"`
}

// StatsResponse is the flat metrics record of the stats endpoint.
type StatsResponse struct {
	TotalPages      string  `json:"totalPages" validate:"required"`
	TotalViews      int64   `json:"totalViews"`
	AvgViewsPerPage float64 `json:"avgViewsPerPage"`
	IndexSizeBytes  string  `json:"indexSizeBytes"`
	StatsTimestamp  string  `json:"statsTimestamp" validate:"required"`
}

// validate checks decoded responses against the struct tags above. A single
// instance caches the parsed tags and is safe for concurrent use.
var validate = validator.New()

// decode unmarshals a raw response body and checks it against the model's
// schema tags. Any decode or validation failure is a terminal
// validation_failure carrying the raw body; it never consumes a retry.
func decode[T any](body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, apierr.NewValidationError(body, err)
	}
	if err := validate.Struct(&v); err != nil {
		return nil, apierr.NewValidationError(body, err)
	}
	return &v, nil
}
