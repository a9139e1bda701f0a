package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"namesapi/internal/config"
)

// DefaultMongoDatabase is used when the connection string names no database.
const DefaultMongoDatabase = "test"

// MongoDatabaseName extracts the database name from a MongoDB connection string.
func MongoDatabaseName(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongo uri: %w", err)
	}
	if cs.Database == "" {
		return DefaultMongoDatabase, nil
	}
	return cs.Database, nil
}

// NewMongo creates the shared MongoDB client and returns the records collection.
// The driver dials in the background, so an unreachable server is not an error here.
// Disconnect through coll.Database().Client().
func NewMongo(ctx context.Context, c config.MongoConfig) (*mongo.Collection, error) {
	if c.Collection == "" {
		return nil, fmt.Errorf("invalid mongo config: collection is required")
	}
	dbName, err := MongoDatabaseName(c.URI)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	return client.Database(dbName).Collection(c.Collection), nil
}
