package locationRepo

import (
	"context"
	"fmt"
	"time"

	"ysgtransport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocationRepository defines data access for saved pickup/dropoff places.
type LocationRepository interface {
	ListActive() ([]models.Location, error)

	// IncrementFrequency bumps the usage counter of a named location.
	// Unknown names are a no-op, not an error: free-form ride locations are
	// allowed to miss the saved list.
	IncrementFrequency(name string) error

	// Seed upserts built-in locations so a fresh database offers the usual
	// places in the request form.
	Seed(defaults []models.Location) error
}

// MongoLocationRepo implements LocationRepository using MongoDB.
type MongoLocationRepo struct {
	coll *mongo.Collection
}

func NewMongoLocationRepo(client *mongo.Client, dbName string) (LocationRepository, error) {
	coll := client.Database(dbName).Collection("locations")
	repo := &MongoLocationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("location repo: %w", err)
	}
	return repo, nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLocationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListActive returns active locations, most used first.
func (r *MongoLocationRepo) ListActive() ([]models.Location, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "frequency", Value: -1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

func (r *MongoLocationRepo) IncrementFrequency(name string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"frequency": 1}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"name": name}, update); err != nil {
		return fmt.Errorf("failed to increment frequency for %s: %w", name, err)
	}
	return nil
}

func (r *MongoLocationRepo) Seed(defaults []models.Location) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	for _, loc := range defaults {
		filter := bson.M{"name": loc.Name}
		update := bson.M{"$setOnInsert": loc}
		opts := options.Update().SetUpsert(true)
		if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", loc.Name, err)
		}
	}
	return nil
}
