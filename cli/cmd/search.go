package cmd

import (
	"context"

	"github.com/spf13/cobra"

	grokipedia "github.com/grokipedia/grokipedia-go"
	"github.com/grokipedia/grokipedia-go/cli/internal/output"
)

var (
	searchLimit  int
	searchOffset int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search across Grokipedia articles",
	Long: `Full-text search across Grokipedia articles.

Examples:
  # Search with defaults (12 results)
  grok search "go programming language"

  # Second page of 20 results
  grok search "go programming language" --limit 20 --offset 20

  # JSON output
  grok search "go programming language" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		res, err := client.Search(context.Background(), args[0], &grokipedia.SearchOptions{
			Limit:  searchLimit,
			Offset: searchOffset,
		})
		if err != nil {
			return err
		}

		return output.Get(getOutputFormat()).FormatSearch(res)
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", grokipedia.DefaultSearchLimit, "Maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "Number of results to skip")
	rootCmd.AddCommand(searchCmd)
}
