// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/danielhkuo/idea-board/models"
)

// MongoStore persists ideas in a MongoDB database.
type MongoStore struct {
	client   *mongo.Client
	ideas    *mongo.Collection
	statuses *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// OpenMongo connects to the MongoDB instance at uri and verifies the
// connection with a ping before returning.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		ideas:    db.Collection("ideas"),
		statuses: db.Collection("status_checks"),
	}, nil
}

func (s *MongoStore) InsertIdea(ctx context.Context, idea models.Idea) error {
	if _, err := s.ideas.InsertOne(ctx, idea); err != nil {
		return fmt.Errorf("failed to insert idea: %w", err)
	}
	return nil
}

func (s *MongoStore) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "upvotes", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(listCap)

	cur, err := s.ideas.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}

	ideas := []models.Idea{}
	if err := cur.All(ctx, &ideas); err != nil {
		return nil, fmt.Errorf("failed to decode ideas: %w", err)
	}
	return ideas, nil
}

func (s *MongoStore) UpvoteIdea(ctx context.Context, id string) (models.Idea, error) {
	// Single findAndModify round trip; the store guarantees no concurrent
	// increment is lost.
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := s.ideas.FindOneAndUpdate(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "upvotes", Value: 1}}}},
		opts,
	)

	var idea models.Idea
	if err := res.Decode(&idea); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Idea{}, ErrNotFound
		}
		return models.Idea{}, fmt.Errorf("failed to upvote idea: %w", err)
	}
	return idea, nil
}

func (s *MongoStore) InsertStatusCheck(ctx context.Context, check models.StatusCheck) error {
	if _, err := s.statuses.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

func (s *MongoStore) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(listCap)

	cur, err := s.statuses.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}

	checks := []models.StatusCheck{}
	if err := cur.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}
	return checks, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
