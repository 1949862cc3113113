package cmd

import (
	"context"

	"github.com/spf13/cobra"

	grokipedia "github.com/grokipedia/grokipedia-go"
	"github.com/grokipedia/grokipedia-go/cli/internal/output"
)

var (
	pageNoContent     bool
	pageValidateLinks bool
)

var pageCmd = &cobra.Command{
	Use:   "page <slug>",
	Short: "Retrieve one article by slug",
	Long: `Retrieve one article by slug, including its citations.

Examples:
  # Full article
  grok page go-programming-language

  # Metadata only
  grok page go-programming-language --no-content

  # Ask the server to verify outgoing links
  grok page go-programming-language --validate-links`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		res, err := client.GetPage(context.Background(), args[0], &grokipedia.PageOptions{
			IncludeContent: !pageNoContent,
			ValidateLinks:  pageValidateLinks,
		})
		if err != nil {
			return err
		}

		return output.Get(getOutputFormat()).FormatPage(res)
	},
}

func init() {
	pageCmd.Flags().BoolVar(&pageNoContent, "no-content", false, "Skip the article body")
	pageCmd.Flags().BoolVar(&pageValidateLinks, "validate-links", false, "Ask the server to verify outgoing links")
	rootCmd.AddCommand(pageCmd)
}
