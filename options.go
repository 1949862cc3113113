package grokipedia

import (
	"errors"
	"net/http"
	"time"

	"github.com/grokipedia/grokipedia-go/log"
	"github.com/grokipedia/grokipedia-go/retry"
)

// Option is a function that configures a Client during creation.
type Option func(*clientConfig) error

// WithBaseURL overrides the default API host. The URL must use the http or
// https scheme.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) error {
		if baseURL == "" {
			return errors.New("base URL cannot be empty")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *clientConfig) error {
		c.userAgent = agent
		return nil
	}
}

// WithTimeout sets the per-attempt timeout. This is distinct from the overall
// retry budget: a single attempt timing out counts as one network failure
// subject to the normal retry decision. A zero timeout disables the
// per-attempt deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) error {
		if timeout < 0 {
			return errors.New("timeout cannot be negative")
		}
		c.timeout = timeout
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client to use for requests.
// This allows customization of transport, proxies, and TLS settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) error {
		if httpClient == nil {
			return errors.New("httpClient is nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithRetryPolicy overrides the default retry policy
// (3 retries, 0.5s backoff factor, jitter enabled).
func WithRetryPolicy(policy retry.Policy) Option {
	return func(c *clientConfig) error {
		if policy.MaxRetries < 0 {
			return errors.New("max retries cannot be negative")
		}
		if policy.BackoffFactor < 0 {
			return errors.New("backoff factor cannot be negative")
		}
		c.policy = policy
		return nil
	}
}

// WithWaiter overrides how retry delays suspend execution. The default is
// retry.ContextWaiter, which aborts an in-progress wait when the context is
// cancelled; retry.BlockingWaiter fully suspends the calling goroutine.
func WithWaiter(waiter retry.Waiter) Option {
	return func(c *clientConfig) error {
		if waiter == nil {
			return errors.New("waiter cannot be nil")
		}
		c.waiter = waiter
		return nil
	}
}

// WithLogger configures a custom diagnostic sink for the client.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(c *clientConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
