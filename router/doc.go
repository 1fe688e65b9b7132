// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Idea Board API.

# Route Registration

NewRouter returns the full handler chain (CORS → metrics → mux):

	handler := router.NewRouter(store, cfg)

# Endpoints

Operational:

	GET /health   - plain liveness probe
	GET /metrics  - Prometheus exposition
	GET /         - API banner

Idea board (behind the /api prefix):

	GET   /api/                   - liveness message
	GET   /api/ideas              - list ideas, ranked
	POST  /api/ideas              - create idea
	PATCH /api/ideas/{id}/upvote  - upvote idea

Status checks:

	POST /api/status - record a status check
	GET  /api/status - list status checks

# Handler Initialization

The router creates handler instances with dependency injection:

	ideaHandler := handlers.NewIdeaHandler(store, cfg)
	statusHandler := handlers.NewStatusHandler(store, cfg)

All handlers receive the storage backend and configuration.
*/
package router
