// Package grokipedia is a typed Go client for the Grokipedia content API.
//
// The client exposes four read-only operations (full-text search, page
// retrieval, configuration constants, and aggregate statistics) over a fixed
// HTTP surface, with exponential-backoff retries and a structured error
// taxonomy. All failures surface as *apierr.Error values carrying the
// taxonomy kind, the HTTP status code when known, and the raw response body
// when available.
package grokipedia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grokipedia/grokipedia-go/log"
	"github.com/grokipedia/grokipedia-go/retry"
	"github.com/grokipedia/grokipedia-go/transport"
)

// Default construction settings.
const (
	// DefaultBaseURL is the production Grokipedia host.
	DefaultBaseURL = "https://grokipedia.com"
	// DefaultUserAgent identifies this SDK to the remote API.
	DefaultUserAgent = "Mozilla/5.0 (Grokipedia Go SDK)"
	// DefaultTimeout bounds each individual transport attempt.
	DefaultTimeout = 30 * time.Second
)

// Client defines the interface for interacting with the Grokipedia API.
// Implementations are safe for concurrent use; independent logical calls may
// proceed in parallel, sharing only read-only configuration.
type Client interface {
	// Search performs a full-text search. A nil opts uses the default
	// limit (12) and offset (0).
	Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResponse, error)
	// GetPage retrieves one article by slug. A nil opts includes content
	// and skips link validation.
	GetPage(ctx context.Context, slug string, opts *PageOptions) (*PageResponse, error)
	// GetConstants retrieves the API's configuration constants.
	GetConstants(ctx context.Context) (*ConstantsResponse, error)
	// GetStats retrieves aggregate corpus statistics.
	GetStats(ctx context.Context) (*StatsResponse, error)
	// Close releases the transport connection pool. It is safe to call on
	// all exit paths; defer it right after construction.
	Close()
}

// httpClient is the private implementation of the Client interface.
type httpClient struct {
	transport *transport.Client
}

var _ Client = (*httpClient)(nil)

// NewClient returns a new Client for the Grokipedia API. With no options it
// targets DefaultBaseURL with the default timeout and retry policy
// (3 retries, 0.5s backoff factor, jitter enabled).
func NewClient(options ...Option) (Client, error) {
	cfg := &clientConfig{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		policy:    retry.DefaultPolicy(),
		waiter:    retry.ContextWaiter{},
		logger:    log.Noop(),
	}
	for _, option := range options {
		if option == nil { // allow for easy optional options
			continue
		}
		if err := option(cfg); err != nil {
			return nil, err
		}
	}

	u, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("only HTTP and HTTPS URLs are supported")
	}
	u.Path = strings.TrimRight(u.Path, "/")

	cfg.logger.Info("initializing grokipedia client",
		"base_url", u.String(),
		"timeout", cfg.timeout.String(),
		"max_retries", cfg.policy.MaxRetries)

	return &httpClient{
		transport: transport.New(transport.Config{
			BaseURL:    u,
			HTTPClient: cfg.httpClient,
			UserAgent:  cfg.userAgent,
			Timeout:    cfg.timeout,
			Policy:     cfg.policy,
			Waiter:     cfg.waiter,
			Logger:     cfg.logger,
		}),
	}, nil
}

// Close releases idle connections held by the client's transport pool.
func (c *httpClient) Close() {
	c.transport.Close()
}

// clientConfig collects construction-time settings before the transport is
// built. It is discarded once NewClient returns.
type clientConfig struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	policy     retry.Policy
	waiter     retry.Waiter
	logger     log.Logger
}
