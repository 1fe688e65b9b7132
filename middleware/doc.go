// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Metrics

Wrap the full mux to record Prometheus counters and latency histograms:

	handler := middleware.WithMetrics(mux)

Labels are method, path (query stripped) and status text.

# CORS Middleware

Enable cross-origin requests from the configured origins:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigins, mux),
	}

A single "*" entry allows any origin. Allows methods GET, POST, PATCH,
DELETE, OPTIONS with headers Content-Type, Authorization, and answers
preflight requests directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "message")

Parse JSON request bodies:

	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used by the request logger.
*/
package middleware
