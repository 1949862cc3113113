// Package transport drives one logical API call through zero or more HTTP
// attempts, applying the retry policy and error classification. It owns the
// base URL, default headers, per-attempt timeout, and the underlying
// connection pool; it knows nothing about response schemas.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/grokipedia/grokipedia-go/apierr"
	"github.com/grokipedia/grokipedia-go/log"
	"github.com/grokipedia/grokipedia-go/retry"
)

// Config collects the executor's construction-time settings. Zero-value
// fields are replaced with defaults by New.
type Config struct {
	// BaseURL is the root of the remote API. Required.
	BaseURL *url.URL
	// HTTPClient performs the transport calls. Defaults to a fresh
	// http.Client; per-attempt timeouts are applied via context deadlines,
	// not http.Client.Timeout.
	HTTPClient *http.Client
	// UserAgent is sent on every request.
	UserAgent string
	// Timeout bounds each individual attempt. Zero disables the
	// per-attempt deadline.
	Timeout time.Duration
	// Policy governs retries. A per-call override can be injected with
	// retry.ToContext.
	Policy retry.Policy
	// Waiter performs the backoff suspension. Defaults to
	// retry.ContextWaiter.
	Waiter retry.Waiter
	// Logger receives diagnostic events. Defaults to a no-op logger; a
	// per-call logger can be injected with log.WithContextLogger.
	Logger log.Logger
}

// Client executes GET requests against the remote API with retries.
// It is safe for concurrent use: all fields are read-only after construction.
type Client struct {
	base      *url.URL
	client    *http.Client
	userAgent string
	timeout   time.Duration
	policy    retry.Policy
	waiter    retry.Waiter
	logger    log.Logger
}

// New creates an executor from the given configuration.
func New(cfg Config) *Client {
	c := &Client{
		base:      cfg.BaseURL,
		client:    cfg.HTTPClient,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		policy:    cfg.Policy,
		waiter:    cfg.Waiter,
		logger:    cfg.Logger,
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	if c.waiter == nil {
		c.waiter = retry.ContextWaiter{}
	}
	if c.logger == nil {
		c.logger = log.Noop()
	}
	return c
}

// Close releases idle connections held by the underlying transport pool.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// Get performs a GET request against path with the given query parameters,
// retrying retryable failures per the governing policy. It returns the raw
// response body of the first 2xx response, or exactly one terminal
// *apierr.Error.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	logger := c.resolveLogger(ctx)
	policy := retry.FromContextOr(ctx, c.policy)

	for attempt := 0; ; attempt++ {
		logger.Debug("performing request",
			"method", http.MethodGet,
			"url", u.String(),
			"attempt", attempt+1)

		body, failure := c.attempt(ctx, u.String())
		if failure == nil {
			logger.Debug("request successful", "url", u.String(), "attempt", attempt+1)
			return body, nil
		}

		// A cancelled caller context must not consume further attempts,
		// even with a waiter that ignores cancellation.
		if ctx.Err() != nil {
			aborted := apierr.FromTransport(ctx.Err())
			logger.Error("request aborted",
				"url", u.String(),
				"attempt", attempt+1,
				"error", aborted.Message)
			return nil, aborted
		}

		decision := policy.Decide(failure.Kind, attempt)
		if !decision.Retry {
			logger.Error("request failed",
				"url", u.String(),
				"kind", failure.Kind.String(),
				"status_code", failure.StatusCode,
				"attempts", attempt+1,
				"error", failure.Message)
			return nil, failure
		}

		logger.Warn("retrying request",
			"url", u.String(),
			"kind", failure.Kind.String(),
			"status_code", failure.StatusCode,
			"attempt", attempt+1,
			"max_retries", policy.MaxRetries,
			"delay", decision.Delay.String())

		if waitErr := c.waiter.Wait(ctx, decision.Delay); waitErr != nil {
			aborted := apierr.FromTransport(waitErr)
			logger.Error("retry wait aborted", "url", u.String(), "error", waitErr.Error())
			return nil, aborted
		}
	}
}

// attempt performs a single transport call. It returns the raw body on a
// 2xx response, or the classified failure otherwise.
func (c *Client) attempt(ctx context.Context, url string) ([]byte, *apierr.Error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apierr.FromTransport(err)
	}
	c.addDefaultHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, apierr.FromTransport(err)
	}
	defer res.Body.Close()

	body, err := readBody(res)
	if err != nil {
		return nil, apierr.FromTransport(err)
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return body, nil
	}

	return nil, apierr.FromResponse(res, body)
}

// addDefaultHeaders adds the default headers to the request.
func (c *Client) addDefaultHeaders(req *http.Request) {
	agent := c.userAgent
	if agent == "" {
		agent = "grokipedia-go/0"
	}
	req.Header.Set("User-Agent", agent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
}

// readBody reads the response body, decompressing it when the server replied
// with Content-Encoding: gzip. Setting Accept-Encoding explicitly disables
// net/http's transparent decompression, so it is handled here.
func readBody(res *http.Response) ([]byte, error) {
	var reader io.Reader = res.Body
	if res.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(res.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	return io.ReadAll(reader)
}

// resolveLogger prefers a context-injected logger over the client's own.
func (c *Client) resolveLogger(ctx context.Context) log.Logger {
	if logger := log.GetContextLogger(ctx); logger != nil {
		return logger
	}
	return c.logger
}
