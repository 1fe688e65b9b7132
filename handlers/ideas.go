// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/storage"
)

// MaxIdeaLength is the upper bound on idea text, in code points.
const MaxIdeaLength = 280

type IdeaHandler struct {
	store storage.Store
	cfg   cliparse.Config
}

func NewIdeaHandler(store storage.Store, cfg cliparse.Config) *IdeaHandler {
	return &IdeaHandler{store: store, cfg: cfg}
}

// GetIdeas handles GET /api/ideas
// Returns all ideas sorted by upvotes (descending), ties broken by
// creation time (newest first).
func (h *IdeaHandler) GetIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.store.ListIdeas(r.Context())
	if err != nil {
		slog.Error("failed to list ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ideas)
}

// CreateIdea handles POST /api/ideas
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input. Length counts code points, not bytes.
	length := utf8.RuneCountInString(req.Text)
	if length < 1 || length > MaxIdeaLength {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "text must be 1-280 characters")
		return
	}

	idea := models.Idea{
		ID:      uuid.NewString(),
		Text:    req.Text,
		Upvotes: 0,
		// Millisecond precision survives every backend, so the record the
		// caller sees now matches what a later list returns.
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := h.store.InsertIdea(r.Context(), idea); err != nil {
		slog.Error("failed to insert idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	slog.Info("idea created", "idea_id", idea.ID)

	middleware.JSONResponse(w, http.StatusOK, idea)
}

// UpvoteIdea handles PATCH /api/ideas/{id}/upvote
// Atomically increments the upvote counter and returns the updated record.
func (h *IdeaHandler) UpvoteIdea(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	idea, err := h.store.UpvoteIdea(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}
	if err != nil {
		slog.Error("failed to upvote idea", "error", err, "idea_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("idea upvoted", "idea_id", id, "upvotes", idea.Upvotes)

	middleware.JSONResponse(w, http.StatusOK, idea)
}
