package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/nomikai/internal/config"
)

func noEnv(string) string { return "" }

func TestNewWithoutConnectionString(t *testing.T) {
	_, err := New(context.Background(), config.New(), noEnv)
	assert.True(t, errors.Is(err, config.ErrNoConnectionString), "got %v", err)
}

func TestNewServesRequests(t *testing.T) {
	cfg := config.New()
	dbPath := filepath.Join(t.TempDir(), "nomikai.db")
	getenv := func(k string) string {
		if k == config.ConnectionStringEnv {
			return "sqlite://" + dbPath
		}
		return ""
	}

	a, err := New(context.Background(), cfg, getenv)
	require.NoError(t, err)
	defer a.Close()

	do := func(method, target, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		a.Handler.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
		return rec
	}

	rec := do(http.MethodPost, "/savenomikai",
		`{"eventDate":"2024-04-12","eventName":"Party","participants":"Alice、Bob","amount":1000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(http.MethodOptions, "/savenomikai", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nomikai_http_requests_total{code="200",route="POST /savenomikai"} 1`)
}
