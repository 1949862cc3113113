package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/grokipedia/grokipedia-go/cli/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate corpus statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		res, err := client.GetStats(context.Background())
		if err != nil {
			return err
		}

		return output.Get(getOutputFormat()).FormatStats(res)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
