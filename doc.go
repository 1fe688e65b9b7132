// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Idea Board API server.

Idea Board is a small REST service: clients submit short text ideas,
read them ranked by upvotes, and upvote existing ones.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	MONGO_URL=mongodb://localhost:27017 DB_NAME=idea_board go run main.go

Or with flags:

	go run main.go -p 8000 -t sqlite -d ideas.db

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - MONGO_URL / DATABASE_URL (-d): storage connection string

Optional settings:

  - PORT (-p): server port (default: 8000)
  - STORAGE_TYPE (-t): mongo, sqlite, or postgres (default: mongo)
  - DB_NAME (-n): MongoDB database name (default: idea_board)
  - CORS_ORIGINS: comma-separated allowed origins, or * (default: *)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (ideas, status checks)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - metrics: Prometheus instrumentation
  - models: Request/response and domain types
  - storage: Store interface with MongoDB and SQL backends
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
