package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/grokipedia/grokipedia-go/cli/internal/output"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Show the API's configuration constants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		res, err := client.GetConstants(context.Background())
		if err != nil {
			return err
		}

		return output.Get(getOutputFormat()).FormatConstants(res)
	},
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}
