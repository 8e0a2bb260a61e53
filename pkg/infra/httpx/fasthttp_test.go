package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastHTTPClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body) //nolint:errcheck
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "sneakerlens-test", r.Header.Get("User-Agent"))
		w.Header().Set("X-Echo", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewFastHTTPClient(WithUserAgent("sneakerlens-test"), WithTimeout(5*time.Second))
	req, err := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader(`{"inputs":"jordan"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Echo"))
	assert.Equal(t, `{"inputs":"jordan"}`, string(body))
}

func TestFastHTTPClient_ExpiredContext(t *testing.T) {
	client := NewFastHTTPClient()
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:1", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
