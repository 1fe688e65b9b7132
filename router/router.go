// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/handlers"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/storage"
)

func NewRouter(store storage.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	ideaHandler := handlers.NewIdeaHandler(store, cfg)
	statusHandler := handlers.NewStatusHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Idea board (public)
	mux.HandleFunc("GET /api/ideas", middleware.WithLogging(ideaHandler.GetIdeas))
	mux.HandleFunc("POST /api/ideas", middleware.WithLogging(ideaHandler.CreateIdea))
	mux.HandleFunc("PATCH /api/ideas/{id}/upvote", middleware.WithLogging(ideaHandler.UpvoteIdea))

	// Status checks
	mux.HandleFunc("GET /api/status", middleware.WithLogging(statusHandler.GetStatusChecks))
	mux.HandleFunc("POST /api/status", middleware.WithLogging(statusHandler.CreateStatusCheck))

	// API root liveness message
	mux.HandleFunc("GET /api/{$}", middleware.WithLogging(statusHandler.Root))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("idea-board API v1"))
	})

	return middleware.CORS(cfg.CORSOrigins, middleware.WithMetrics(mux))
}
