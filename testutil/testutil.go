// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/storage"
)

// SetupTestStore creates a fresh in-memory sqlite store.
// The pool is pinned to one connection; an in-memory sqlite database
// exists per connection.
func SetupTestStore(t *testing.T) *storage.SQLStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	store, err := storage.NewSQLStore(db)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		store.Close(context.Background())
	})

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        8000,
		StorageType: cliparse.StorageSQLite,
		StorageURL:  ":memory:",
		DBName:      "idea_board_test",
		CORSOrigins: []string{"*"},
	}
}

// CreateTestIdea inserts an idea with the given text, upvote count and
// creation time, and returns it.
func CreateTestIdea(t *testing.T, store storage.Store, text string, upvotes int, createdAt time.Time) models.Idea {
	t.Helper()

	idea := models.Idea{
		ID:        uuid.NewString(),
		Text:      text,
		Upvotes:   upvotes,
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
	}
	if err := store.InsertIdea(context.Background(), idea); err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}

	return idea
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
