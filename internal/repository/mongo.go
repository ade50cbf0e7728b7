package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	projectsCollection = "projects"
	contactsCollection = "contacts"
)

// mongoPinger adapts *mongo.Client to DB.
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

func openMongo(ctx context.Context, uri, databaseName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(databaseName)
	return &Store{
		Backend:  "mongo",
		Projects: NewMongoProjectRepository(db),
		Contacts: NewMongoContactRepository(db),
		Schema:   NewMongoSchema(db),
		DB:       mongoPinger{client: client},
		close:    client.Disconnect,
	}, nil
}

// newestFirst builds find options sorted by created_at descending.
func newestFirst(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
}

// MongoSchema maintains the unique id indexes on both collections.
type MongoSchema struct {
	db *mongo.Database
}

// NewMongoSchema creates a MongoSchema for the given database.
func NewMongoSchema(db *mongo.Database) *MongoSchema {
	return &MongoSchema{db: db}
}

var _ Schema = (*MongoSchema)(nil)

func uniqueIDIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

// Ensure creates the indexes; existing identical indexes are left alone.
func (s *MongoSchema) Ensure(ctx context.Context) error {
	for _, name := range []string{projectsCollection, contactsCollection} {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, uniqueIDIndex()); err != nil {
			return fmt.Errorf("ensure %s index: %w", name, err)
		}
	}
	return nil
}

// Drop removes both collections and their data.
func (s *MongoSchema) Drop(ctx context.Context) error {
	for _, name := range []string{projectsCollection, contactsCollection} {
		if err := s.db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return nil
}
