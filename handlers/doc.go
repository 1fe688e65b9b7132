// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Idea Board API.

# Handler Types

Each handler is a struct with storage and config dependencies:

  - IdeaHandler: list, create and upvote ideas
  - StatusHandler: API root message and status checks

Handlers are created via constructor functions that accept a
storage.Store and Config:

	ideaHandler := handlers.NewIdeaHandler(store, cfg)

# Idea Flow

	GET   /api/ideas              → GetIdeas (upvotes desc, created_at desc)
	POST  /api/ideas              → CreateIdea (text 1-280 characters)
	PATCH /api/ideas/{id}/upvote  → UpvoteIdea (atomic increment-and-fetch)

Create and upvote persist before responding; there is no write-behind.

# Status Codes

  - 200: success (create included; the created record is returned)
  - 400: malformed JSON or missing path value
  - 404: upvote target does not exist
  - 422: text outside 1-280 characters, or empty client_name
  - 500: storage unreachable (not retried; the caller may retry)

# Status Checks

	POST /api/status → CreateStatusCheck (records client_name + timestamp)
	GET  /api/status → GetStatusChecks
*/
package handlers
