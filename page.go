package grokipedia

import (
	"context"
	"net/url"
	"strconv"
)

// PageOptions tunes a page retrieval.
type PageOptions struct {
	// IncludeContent requests the full article body.
	IncludeContent bool
	// ValidateLinks asks the server to verify outgoing links.
	ValidateLinks bool
}

// DefaultPageOptions returns the options used when none are provided:
// content included, links not validated.
func DefaultPageOptions() *PageOptions {
	return &PageOptions{IncludeContent: true}
}

// GetPage retrieves one article by slug from /api/page.
func (c *httpClient) GetPage(ctx context.Context, slug string, opts *PageOptions) (*PageResponse, error) {
	if opts == nil {
		opts = DefaultPageOptions()
	}

	params := make(url.Values)
	params.Set("slug", slug)
	params.Set("includeContent", strconv.FormatBool(opts.IncludeContent))
	params.Set("validateLinks", strconv.FormatBool(opts.ValidateLinks))

	body, err := c.transport.Get(ctx, "/api/page", params)
	if err != nil {
		return nil, err
	}

	return decode[PageResponse](body)
}
