package apierr

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromResponse_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantKind  Kind
		sentinel  error
		retryable bool
	}{
		{
			name:      "400 maps to bad request",
			status:    http.StatusBadRequest,
			wantKind:  KindBadRequest,
			sentinel:  ErrBadRequest,
			retryable: false,
		},
		{
			name:      "404 maps to not found",
			status:    http.StatusNotFound,
			wantKind:  KindNotFound,
			sentinel:  ErrNotFound,
			retryable: false,
		},
		{
			name:      "429 maps to rate limited",
			status:    http.StatusTooManyRequests,
			wantKind:  KindRateLimited,
			sentinel:  ErrRateLimited,
			retryable: true,
		},
		{
			name:      "500 maps to server error",
			status:    http.StatusInternalServerError,
			wantKind:  KindServerError,
			sentinel:  ErrServerError,
			retryable: true,
		},
		{
			name:      "503 maps to server error",
			status:    http.StatusServiceUnavailable,
			wantKind:  KindServerError,
			sentinel:  ErrServerError,
			retryable: true,
		},
		{
			name:      "599 maps to server error",
			status:    599,
			wantKind:  KindServerError,
			sentinel:  ErrServerError,
			retryable: true,
		},
		{
			name:      "401 falls through to api failure",
			status:    http.StatusUnauthorized,
			wantKind:  KindAPIFailure,
			sentinel:  ErrAPIFailure,
			retryable: false,
		},
		{
			name:      "403 falls through to api failure",
			status:    http.StatusForbidden,
			wantKind:  KindAPIFailure,
			sentinel:  ErrAPIFailure,
			retryable: false,
		},
		{
			name:      "418 falls through to api failure",
			status:    http.StatusTeapot,
			wantKind:  KindAPIFailure,
			sentinel:  ErrAPIFailure,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := &http.Response{
				StatusCode: tt.status,
				Status:     http.StatusText(tt.status),
			}
			err := FromResponse(res, []byte(`{"error":"details"}`))

			require.Equal(t, tt.wantKind, err.Kind)
			require.Equal(t, tt.status, err.StatusCode)
			require.Equal(t, `{"error":"details"}`, err.Body)
			require.Equal(t, tt.retryable, err.Retryable())
			require.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestFromTransport(t *testing.T) {
	t.Parallel()

	cause := io.ErrUnexpectedEOF
	err := FromTransport(cause)

	require.Equal(t, KindNetworkFailure, err.Kind)
	require.Zero(t, err.StatusCode)
	require.Empty(t, err.Body)
	require.True(t, err.Retryable())
	require.ErrorIs(t, err, ErrNetworkFailure)
	require.ErrorIs(t, err, cause)
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("missing field slug")
	err := NewValidationError([]byte(`{"unexpected":true}`), cause)

	require.Equal(t, KindValidationFailure, err.Kind)
	require.Equal(t, `{"unexpected":true}`, err.Body)
	require.False(t, err.Retryable())
	require.ErrorIs(t, err, ErrValidationFailure)
	require.ErrorIs(t, err, cause)
}

func TestKindRetryable(t *testing.T) {
	t.Parallel()

	require.True(t, KindRateLimited.Retryable())
	require.True(t, KindServerError.Retryable())
	require.True(t, KindNetworkFailure.Retryable())
	require.False(t, KindBadRequest.Retryable())
	require.False(t, KindNotFound.Retryable())
	require.False(t, KindValidationFailure.Retryable())
	require.False(t, KindAPIFailure.Retryable())
	require.False(t, Kind("something_else").Retryable())
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	withStatus := &Error{Kind: KindNotFound, StatusCode: 404, Message: "resource not found"}
	require.Equal(t, "not_found (status code 404): resource not found", withStatus.Error())

	withoutStatus := &Error{Kind: KindNetworkFailure, Message: "network error: dial tcp: connection refused"}
	require.Equal(t, "network_failure: network error: dial tcp: connection refused", withoutStatus.Error())
}

func TestError_IsDoesNotMatchOtherSentinels(t *testing.T) {
	t.Parallel()

	err := &Error{Kind: KindNotFound, StatusCode: 404, Message: "resource not found"}
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrBadRequest)
	require.NotErrorIs(t, err, ErrServerError)
}
