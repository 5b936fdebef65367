package coingecko_common

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryOptions() RetryOptions {
	opts := DefaultRetryOptions()
	opts.BaseBackoff = 1 * time.Millisecond
	return opts
}

func TestHTTPClientWithRetries_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(), nil, nil)

	req, err := http.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)

	resp, body, _, err := client.ExecuteRequest(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestHTTPClientWithRetries_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(), nil, nil)

	req, err := http.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)

	resp, body, _, err := client.ExecuteRequest(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClientWithRetries_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(), nil, nil)

	req, err := http.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)

	_, _, _, err = client.ExecuteRequest(req)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClientWithRetries_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	opts := fastRetryOptions()
	opts.MaxRetries = 2
	client := NewHTTPClientWithRetries(opts, nil, nil)

	req, err := http.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)

	_, _, _, err = client.ExecuteRequest(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 attempts failed")
	assert.Equal(t, int32(2), calls.Load())
}

type recordingStatusHandler struct {
	statuses []string
	retries  int
}

func (h *recordingStatusHandler) OnRequest(status string) { h.statuses = append(h.statuses, status) }
func (h *recordingStatusHandler) OnRetry()                { h.retries++ }

func TestHTTPClientWithRetries_StatusHandler(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	handler := &recordingStatusHandler{}
	client := NewHTTPClientWithRetries(fastRetryOptions(), handler, nil)

	req, err := http.NewRequest("GET", server.URL, nil)
	require.NoError(t, err)

	resp, _, _, err := client.ExecuteRequest(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, []string{"rate_limited", "success"}, handler.statuses)
	assert.Equal(t, 1, handler.retries)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	base := 100 * time.Millisecond

	assert.Equal(t, base, calculateBackoffWithJitter(base, 0))

	for attempt := 1; attempt <= 3; attempt++ {
		expected := base * time.Duration(1<<uint(attempt-1))
		got := calculateBackoffWithJitter(base, attempt)
		assert.GreaterOrEqual(t, got, expected)
		assert.Less(t, got, expected+expected/2)
	}
}
