package handler

import (
	"context"
	"net/http"
	"time"

	"medical-agent-webhook/pkg/response"
)

// Pinger is any dependency whose reachability gates readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthHandler struct {
	directory Pinger
	cache     Pinger
	env       string
	version   string
}

// NewHealthHandler builds the health endpoints. cache may be nil when caching is off.
func NewHealthHandler(directory, cache Pinger, env, version string) *HealthHandler {
	return &HealthHandler{
		directory: directory,
		cache:     cache,
		env:       env,
		version:   version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Env          string            `json:"env,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	})
}

// Readiness reports "error" when the directory is down and "degraded" when
// only the cache is
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	status := "ok"

	if h.directory != nil {
		if err := ping(ctx, h.directory); err != nil {
			deps["directory"] = "down"
			status = "error"
		} else {
			deps["directory"] = "ok"
		}
	}

	if h.cache != nil {
		if err := ping(ctx, h.cache); err != nil {
			deps["cache"] = "down"
			if status == "ok" {
				status = "degraded"
			}
		} else {
			deps["cache"] = "ok"
		}
	}

	httpStatus := http.StatusOK
	if status == "error" {
		httpStatus = http.StatusServiceUnavailable
	}

	response.JSON(w, httpStatus, ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Env:          h.env,
		Dependencies: deps,
	})
}

func ping(ctx context.Context, p Pinger) error {
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return p.Ping(pingCtx)
}
