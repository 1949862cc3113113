package output

import (
	"fmt"

	"github.com/fatih/color"

	grokipedia "github.com/grokipedia/grokipedia-go"
)

// HumanFormatter outputs in human-readable format with colors
type HumanFormatter struct {
	title *color.Color
	info  *color.Color
	dim   *color.Color
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		title: color.New(color.FgGreen, color.Bold),
		info:  color.New(color.FgCyan),
		dim:   color.New(color.Faint),
	}
}

// FormatSearch outputs search results, one per line with slug and score
func (f *HumanFormatter) FormatSearch(res *grokipedia.SearchResponse) error {
	for _, result := range res.Results {
		fmt.Printf("%s  %s %s\n",
			f.title.Sprint(result.Title),
			f.dim.Sprint(result.Slug),
			f.dim.Sprintf("(score %.2f, %s views)", result.RelevanceScore, result.ViewCount))
		if result.Snippet != "" {
			fmt.Printf("  %s\n", result.Snippet)
		}
	}
	fmt.Printf("%s\n", f.info.Sprintf("%d results", len(res.Results)))
	return nil
}

// FormatPage outputs the article header, content, and citation list
func (f *HumanFormatter) FormatPage(res *grokipedia.PageResponse) error {
	page := res.Page
	fmt.Printf("%s %s\n", f.title.Sprint(page.Title), f.dim.Sprint(page.Slug))
	if page.Description != "" {
		fmt.Printf("%s\n", page.Description)
	}
	if page.Content != "" {
		fmt.Printf("\n%s\n", page.Content)
	}
	if len(page.Citations) > 0 {
		fmt.Printf("\n%s\n", f.info.Sprint("Citations:"))
		for _, citation := range page.Citations {
			fmt.Printf("  [%s] %s %s\n", citation.ID, citation.Title, f.dim.Sprint(citation.URL))
		}
	}
	return nil
}

// FormatConstants outputs the configuration record as key: value lines
func (f *HumanFormatter) FormatConstants(res *grokipedia.ConstantsResponse) error {
	fmt.Printf("%s %s\n", f.info.Sprint("account url:"), res.AccountURL)
	fmt.Printf("%s %s\n", f.info.Sprint("grok.com url:"), res.GrokComURL)
	fmt.Printf("%s %s\n", f.info.Sprint("environment:"), res.AppEnv)
	return nil
}

// FormatStats outputs the metrics record as key: value lines
func (f *HumanFormatter) FormatStats(res *grokipedia.StatsResponse) error {
	fmt.Printf("%s %s\n", f.info.Sprint("total pages:"), res.TotalPages)
	fmt.Printf("%s %d\n", f.info.Sprint("total views:"), res.TotalViews)
	fmt.Printf("%s %.2f\n", f.info.Sprint("avg views/page:"), res.AvgViewsPerPage)
	fmt.Printf("%s %s\n", f.info.Sprint("index size:"), res.IndexSizeBytes)
	fmt.Printf("%s %s\n", f.dim.Sprint("as of:"), res.StatsTimestamp)
	return nil
}

// FormatInfo outputs constants and stats together
func (f *HumanFormatter) FormatInfo(constants *grokipedia.ConstantsResponse, stats *grokipedia.StatsResponse) error {
	if err := f.FormatConstants(constants); err != nil {
		return err
	}
	fmt.Println()
	return f.FormatStats(stats)
}
