package models

import "time"

// Request types

type CreateIdeaRequest struct {
	Text string `json:"text"`
}

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

// Response types

type RootResponse struct {
	Message string `json:"message"`
}

// Domain types

// Idea is a persisted text submission with an upvote counter.
// The id is an opaque UUID stored in its own field; text and created_at
// are immutable after creation.
type Idea struct {
	ID        string    `json:"id" bson:"id"`
	Text      string    `json:"text" bson:"text"`
	Upvotes   int       `json:"upvotes" bson:"upvotes"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// StatusCheck records a liveness ping from a named client.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
