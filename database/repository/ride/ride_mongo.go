package rideRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRideRepo implements RideRepository using MongoDB.
type MongoRideRepo struct {
	coll *mongo.Collection
}

// NewMongoRideRepo creates a RideRepository backed by the "rides" collection
// of the given database.
func NewMongoRideRepo(client *mongo.Client, dbName string) (RideRepository, error) {
	coll := client.Database(dbName).Collection("rides")
	repo := &MongoRideRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("ride repo: %w", err)
	}
	return repo, nil
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRideRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
