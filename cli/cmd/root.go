package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	grokipedia "github.com/grokipedia/grokipedia-go"
	"github.com/grokipedia/grokipedia-go/log"
	"github.com/grokipedia/grokipedia-go/retry"
)

var (
	// Global flags
	baseURL string
	timeout time.Duration
	retries int
	jsonOut bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "grok",
	Short: "A command-line client for the Grokipedia content API",
	Long: `grok queries the Grokipedia content API: full-text search, article
retrieval, configuration constants, and aggregate statistics.

Examples:
  grok search "go programming language"
  grok page go-programming-language
  grok stats --json`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", grokipedia.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", grokipedia.DefaultTimeout, "Per-attempt request timeout")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 3, "Maximum retries per request")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// newClient builds a library client from the global flags.
func newClient() (grokipedia.Client, error) {
	options := []grokipedia.Option{
		grokipedia.WithBaseURL(baseURL),
		grokipedia.WithTimeout(timeout),
		grokipedia.WithRetryPolicy(retry.Policy{
			MaxRetries:    retries,
			BackoffFactor: 0.5,
			Jitter:        true,
		}),
	}
	if debug {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		options = append(options, grokipedia.WithLogger(log.NewSlogLogger(slog.New(handler))))
	}
	return grokipedia.NewClient(options...)
}

// getOutputFormat returns "json" if the json flag is set, otherwise "human"
func getOutputFormat() string {
	if jsonOut {
		return "json"
	}
	return "human"
}
