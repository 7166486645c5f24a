package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	up   = PingerFunc(func(context.Context) error { return nil })
	down = PingerFunc(func(context.Context) error { return errors.New("connection refused") })
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(down, down, "test", "1.2.3")
	rec := httptest.NewRecorder()

	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body LivenessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, LivenessResponse{Status: "ok", Version: "1.2.3", Env: "test"}, body)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		directory  Pinger
		cache      Pinger
		wantCode   int
		wantStatus string
		wantDeps   map[string]string
	}{
		{
			name:       "all up",
			directory:  up,
			cache:      up,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantDeps:   map[string]string{"directory": "ok", "cache": "ok"},
		},
		{
			name:       "cache disabled",
			directory:  up,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantDeps:   map[string]string{"directory": "ok"},
		},
		{
			name:       "cache down",
			directory:  up,
			cache:      down,
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantDeps:   map[string]string{"directory": "ok", "cache": "down"},
		},
		{
			name:       "directory down",
			directory:  down,
			cache:      down,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "error",
			wantDeps:   map[string]string{"directory": "down", "cache": "down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.directory, tt.cache, "test", "1.2.3")
			rec := httptest.NewRecorder()

			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var body ReadinessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantDeps, body.Dependencies)
		})
	}
}
