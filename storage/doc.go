// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage provides the persistence layer behind the Idea Board API.

# Store Interface

The API layer depends on three idea contracts plus status checks:

	store.InsertIdea(ctx, idea)   // durable insert
	store.ListIdeas(ctx)          // (upvotes desc, created_at desc)
	store.UpvoteIdea(ctx, id)     // atomic increment-and-fetch

UpvoteIdea returns ErrNotFound when no record matches. All shared state
lives in the external store; the process holds one long-lived connection,
opened at startup and released with Close.

# Backends

MongoDB (the default):

	store, err := storage.OpenMongo(ctx, "mongodb://localhost:27017", "idea_board")

Ideas live in the "ideas" collection with the application-assigned uuid in
an "id" field. Upvotes use findAndModify with $inc and ReturnDocument
After, so concurrent upvotes of the same idea never lose an increment.

SQL (sqlite or postgres, one shared implementation):

	store, err := storage.OpenSQL("sqlite", "ideas.db")
	store, err := storage.OpenSQL("postgres", "postgres://...")

Queries use $1-style placeholders, valid on both drivers. Upvotes use a
single UPDATE ... RETURNING statement for the same atomicity guarantee.
Timestamps are stored as unix nanoseconds so ordering and round-trips are
exact on every driver.

# List Cap

List queries are bounded to 1000 records. This mirrors the store's fetch
cap and is an implementation detail, not part of the API contract.
*/
package storage
