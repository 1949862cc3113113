package output

import (
	"encoding/json"
	"os"

	grokipedia "github.com/grokipedia/grokipedia-go"
)

// JSONFormatter outputs in JSON format
type JSONFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return &JSONFormatter{
		encoder: enc,
	}
}

// FormatSearch outputs search results in JSON format
func (f *JSONFormatter) FormatSearch(res *grokipedia.SearchResponse) error {
	return f.encoder.Encode(res)
}

// FormatPage outputs an article in JSON format
func (f *JSONFormatter) FormatPage(res *grokipedia.PageResponse) error {
	return f.encoder.Encode(res)
}

// FormatConstants outputs the configuration record in JSON format
func (f *JSONFormatter) FormatConstants(res *grokipedia.ConstantsResponse) error {
	return f.encoder.Encode(res)
}

// FormatStats outputs the metrics record in JSON format
func (f *JSONFormatter) FormatStats(res *grokipedia.StatsResponse) error {
	return f.encoder.Encode(res)
}

// infoOutput combines constants and stats for JSON output
type infoOutput struct {
	Constants *grokipedia.ConstantsResponse `json:"constants"`
	Stats     *grokipedia.StatsResponse     `json:"stats"`
}

// FormatInfo outputs constants and stats as one JSON document
func (f *JSONFormatter) FormatInfo(constants *grokipedia.ConstantsResponse, stats *grokipedia.StatsResponse) error {
	return f.encoder.Encode(infoOutput{Constants: constants, Stats: stats})
}
