// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/storage"
)

type StatusHandler struct {
	store storage.Store
	cfg   cliparse.Config
}

func NewStatusHandler(store storage.Store, cfg cliparse.Config) *StatusHandler {
	return &StatusHandler{store: store, cfg: cfg}
}

// Root handles GET /api/
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.RootResponse{
		Message: "Idea Board API is running!",
	})
}

// CreateStatusCheck handles POST /api/status
func (h *StatusHandler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStatusCheckRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ClientName == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "client_name is required")
		return
	}

	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := h.store.InsertStatusCheck(r.Context(), check); err != nil {
		slog.Error("failed to insert status check", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create status check")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, check)
}

// GetStatusChecks handles GET /api/status
func (h *StatusHandler) GetStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.store.ListStatusChecks(r.Context())
	if err != nil {
		slog.Error("failed to list status checks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, checks)
}
