package grokipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grokipedia/grokipedia-go/apierr"
	"github.com/grokipedia/grokipedia-go/retry"
)

func newTestServerClient(t *testing.T, handler http.HandlerFunc, options ...Option) (Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	options = append([]Option{
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRetryPolicy(retry.Policy{MaxRetries: 2, BackoffFactor: 0.001}),
	}, options...)

	client, err := NewClient(options...)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client, srv
}

func TestSearch(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/full-text-search", r.URL.Path)
		require.Equal(t, "concurrency", r.URL.Query().Get("query"))
		require.Equal(t, "12", r.URL.Query().Get("limit"))
		require.Equal(t, "0", r.URL.Query().Get("offset"))

		_, _ = w.Write([]byte(`{"results":[
			{"slug":"goroutines","title":"Goroutines","snippet":"a","relevanceScore":0.9,"viewCount":"5"},
			{"slug":"channels","title":"Channels","snippet":"b","relevanceScore":0.8,"viewCount":"4"},
			{"slug":"mutexes","title":"Mutexes","snippet":"c","relevanceScore":0.7,"viewCount":"3"}
		]}`))
	})

	res, err := client.Search(context.Background(), "concurrency", nil)
	require.NoError(t, err)

	// Exactly N typed records in payload order.
	require.Len(t, res.Results, 3)
	require.Equal(t, "goroutines", res.Results[0].Slug)
	require.Equal(t, "channels", res.Results[1].Slug)
	require.Equal(t, "mutexes", res.Results[2].Slug)
}

func TestSearch_CustomPagination(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "30", r.URL.Query().Get("limit"))
		require.Equal(t, "60", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	res, err := client.Search(context.Background(), "go", &SearchOptions{Limit: 30, Offset: 60})
	require.NoError(t, err)
	require.Empty(t, res.Results)
}

func TestGetPage(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/page", r.URL.Path)
		require.Equal(t, "go-programming-language", r.URL.Query().Get("slug"))
		require.Equal(t, "true", r.URL.Query().Get("includeContent"))
		require.Equal(t, "false", r.URL.Query().Get("validateLinks"))

		_, _ = w.Write([]byte(`{"found":true,"page":{
			"slug":"go-programming-language",
			"title":"Go (programming language)",
			"content":"Go is...",
			"citations":[{"id":"c1","title":"Spec","url":"https://go.dev/ref/spec"}]
		}}`))
	})

	res, err := client.GetPage(context.Background(), "go-programming-language", nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "Go is...", res.Page.Content)
	require.Len(t, res.Page.Citations, 1)
}

func TestGetPage_WithoutContent(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "false", r.URL.Query().Get("includeContent"))
		require.Equal(t, "true", r.URL.Query().Get("validateLinks"))
		_, _ = w.Write([]byte(`{"found":true,"page":{"slug":"x","title":"X"}}`))
	})

	res, err := client.GetPage(context.Background(), "x", &PageOptions{IncludeContent: false, ValidateLinks: true})
	require.NoError(t, err)
	require.Empty(t, res.Page.Content)
}

func TestGetPage_NotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"page not found"}`))
	})

	res, err := client.GetPage(context.Background(), "does-not-exist", nil)
	require.Nil(t, res)
	require.ErrorIs(t, err, apierr.ErrNotFound)
	require.EqualValues(t, 1, calls.Load(), "not found must surface immediately")
}

func TestGetConstants(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/constants", r.URL.Path)
		_, _ = w.Write([]byte(`{"accountUrl":"https://accounts.x.ai","grokComUrl":"https://grok.com","appEnv":"production"}`))
	})

	res, err := client.GetConstants(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://grok.com", res.GrokComURL)
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"totalPages":"100","totalViews":500,"avgViewsPerPage":5,"indexSizeBytes":"1024","statsTimestamp":"2025-11-02T10:00:00Z"}`))
	})

	res, err := client.GetStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(500), res.TotalViews)
}

func TestOperation_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"totalPages":"1","totalViews":1,"avgViewsPerPage":1,"indexSizeBytes":"1","statsTimestamp":"t"}`))
	}, WithRetryPolicy(retry.Policy{MaxRetries: 3, BackoffFactor: 0.001}))

	res, err := client.GetStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1", res.TotalPages)
	require.EqualValues(t, 3, calls.Load(), "exactly 3 transport calls")
}

func TestOperation_ValidationFailureIsTerminal(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}, WithRetryPolicy(retry.Policy{MaxRetries: 3, BackoffFactor: 0.001}))

	_, err := client.GetStats(context.Background())
	require.ErrorIs(t, err, apierr.ErrValidationFailure)
	require.EqualValues(t, 1, calls.Load(), "validation failures never consume retries")
}

func TestOperation_Idempotent(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"slug":"a","title":"A","snippet":"","relevanceScore":1,"viewCount":"1"}]}`))
	})

	first, err := client.Search(context.Background(), "a", nil)
	require.NoError(t, err)
	second, err := client.Search(context.Background(), "a", nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestOperation_SurfacedErrorCarriesDiagnostics(t *testing.T) {
	t.Parallel()

	client, _ := newTestServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"limit must be positive"}`))
	})

	_, err := client.Search(context.Background(), "", nil)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierr.KindBadRequest, apiErr.Kind)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, `{"error":"limit must be positive"}`, apiErr.Body)
}
