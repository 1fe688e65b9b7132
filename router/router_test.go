// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "idea-board API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestAPIRootEndpoint(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	req := httptest.NewRequest("GET", "/api/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp models.RootResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Idea Board API is running!" {
		t.Errorf("Unexpected liveness message: %q", resp.Message)
	}
}

func TestRouteExistence(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	routes := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"GET", "/api/ideas", nil},
		{"POST", "/api/ideas", models.CreateIdeaRequest{Text: "route check"}},
		{"GET", "/api/status", nil},
		{"POST", "/api/status", models.CreateStatusCheckRequest{ClientName: "router-test"}},
		{"GET", "/metrics", nil},
	}

	for _, route := range routes {
		req := testutil.MakeRequest(route.method, route.path, route.body, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
			t.Errorf("Route %s %s not registered (status %d)", route.method, route.path, w.Code)
		}
	}
}

func TestUpvoteRoute(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	// Create through the full router so the path value flows from the mux
	createReq := testutil.MakeRequest("POST", "/api/ideas", models.CreateIdeaRequest{Text: "via router"}, nil)
	createW := httptest.NewRecorder()
	handler.ServeHTTP(createW, createReq)
	testutil.AssertStatus(t, createW, http.StatusOK)

	var idea models.Idea
	testutil.AssertJSON(t, createW, &idea)

	req := testutil.MakeRequest("PATCH", "/api/ideas/"+idea.ID+"/upvote", nil, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var updated models.Idea
	testutil.AssertJSON(t, w, &updated)
	if updated.Upvotes != 1 {
		t.Errorf("Expected 1 upvote, got %d", updated.Upvotes)
	}

	// Unknown id through the router returns 404
	missReq := testutil.MakeRequest("PATCH", "/api/ideas/nonexistent-id/upvote", nil, nil)
	missW := httptest.NewRecorder()
	handler.ServeHTTP(missW, missReq)
	testutil.AssertStatus(t, missW, http.StatusNotFound)
}

func TestCORSHeaders(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	req := httptest.NewRequest("GET", "/api/ideas", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected echoed origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRouter(store, cfg)

	req := httptest.NewRequest("OPTIONS", "/api/ideas", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
}
