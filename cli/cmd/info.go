package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	grokipedia "github.com/grokipedia/grokipedia-go"
	"github.com/grokipedia/grokipedia-go/cli/internal/output"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration constants and corpus statistics together",
	Long: `Show configuration constants and corpus statistics together.
The two endpoints are fetched concurrently.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		var (
			constants *grokipedia.ConstantsResponse
			stats     *grokipedia.StatsResponse
		)

		group, ctx := errgroup.WithContext(context.Background())
		group.Go(func() error {
			var err error
			constants, err = client.GetConstants(ctx)
			return err
		})
		group.Go(func() error {
			var err error
			stats, err = client.GetStats(ctx)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}

		return output.Get(getOutputFormat()).FormatInfo(constants, stats)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
