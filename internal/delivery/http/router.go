package http

import (
	"net/http"

	"medical-agent-webhook/internal/delivery/http/handler"
	"medical-agent-webhook/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	webhookHandler    *handler.WebhookHandler
	healthHandler     *handler.HealthHandler
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	webhookHandler *handler.WebhookHandler,
	healthHandler *handler.HealthHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		webhookHandler:    webhookHandler,
		healthHandler:     healthHandler,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health checks
	r.router.HandleFunc("/health/live", r.healthHandler.Liveness).Methods(http.MethodGet)
	r.router.HandleFunc("/health/ready", r.healthHandler.Readiness).Methods(http.MethodGet)

	// Agent fulfillment
	r.router.HandleFunc("/webhook", r.webhookHandler.Fulfill).Methods(http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}
