// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateIdeaRequest: text
  - CreateStatusCheckRequest: client_name

# Response Types

Types for JSON responses:

  - RootResponse: message
  - ErrorResponse: error, message

Ideas and status checks are returned as the domain types directly.

# Domain Types

Internal data structures, tagged for both JSON and BSON:

  - Idea: id, text, upvotes, created_at
  - StatusCheck: id, client_name, timestamp

Timestamps are UTC and serialize to RFC 3339 strings in JSON.
*/
package models
