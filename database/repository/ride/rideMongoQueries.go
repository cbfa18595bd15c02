package rideRepo

import (
	"fmt"
	"time"

	"ysgtransport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRideRepo) find(filter bson.M, sort bson.D) ([]models.RideRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query rides: %w", err)
	}
	defer cursor.Close(ctx)

	var rides []models.RideRequest
	if err := cursor.All(ctx, &rides); err != nil {
		return nil, fmt.Errorf("failed to decode rides: %w", err)
	}
	return rides, nil
}

// FindUpcoming returns rides dated at or after dayFrom, soonest first.
func (r *MongoRideRepo) FindUpcoming(dayFrom time.Time) ([]models.RideRequest, error) {
	filter := bson.M{"date": bson.M{"$gte": dayFrom}}
	sort := bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}
	return r.find(filter, sort)
}

// FindPast returns rides dated at or before dayTo, most recent first.
func (r *MongoRideRepo) FindPast(dayTo time.Time) ([]models.RideRequest, error) {
	filter := bson.M{"date": bson.M{"$lte": dayTo}}
	sort := bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}}
	return r.find(filter, sort)
}

// FindReminderCandidates returns the coarse, date-bounded candidate set for
// one reminder window. The date filter alone is not tight enough to
// guarantee the window; callers recompute each ride's exact instant.
func (r *MongoRideRepo) FindReminderCandidates(flag ReminderFlag, dayFrom, dayTo time.Time) ([]models.RideRequest, error) {
	filter := bson.M{
		"date":       bson.M{"$gte": dayFrom, "$lte": dayTo},
		string(flag): false,
		"status":     bson.M{"$ne": models.RideStatusCancelled},
	}
	sort := bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}
	return r.find(filter, sort)
}
