package output

import (
	grokipedia "github.com/grokipedia/grokipedia-go"
)

// Formatter defines the interface for different output formats
type Formatter interface {
	// FormatSearch outputs full-text search results
	FormatSearch(res *grokipedia.SearchResponse) error

	// FormatPage outputs one article with its citations
	FormatPage(res *grokipedia.PageResponse) error

	// FormatConstants outputs the API configuration constants
	FormatConstants(res *grokipedia.ConstantsResponse) error

	// FormatStats outputs aggregate corpus statistics
	FormatStats(res *grokipedia.StatsResponse) error

	// FormatInfo outputs constants and stats together
	FormatInfo(constants *grokipedia.ConstantsResponse, stats *grokipedia.StatsResponse) error
}

// Get returns the appropriate formatter based on format type
func Get(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewHumanFormatter()
	}
}
