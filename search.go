package grokipedia

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultSearchLimit is the number of results returned when no limit is set.
const DefaultSearchLimit = 12

// SearchOptions tunes a full-text search. A zero or negative Limit falls back
// to DefaultSearchLimit; a negative Offset is treated as zero.
type SearchOptions struct {
	// Limit is the maximum number of results to return.
	Limit int
	// Offset is the number of results to skip, for pagination.
	Offset int
}

// DefaultSearchOptions returns the options used when none are provided.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{Limit: DefaultSearchLimit}
}

// Search performs a full-text search against /api/full-text-search.
func (c *httpClient) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResponse, error) {
	if opts == nil {
		opts = DefaultSearchOptions()
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	params := make(url.Values)
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := c.transport.Get(ctx, "/api/full-text-search", params)
	if err != nil {
		return nil, err
	}

	return decode[SearchResponse](body)
}
