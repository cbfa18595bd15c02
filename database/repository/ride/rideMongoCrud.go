package rideRepo

import (
	"fmt"
	"time"

	"ysgtransport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new ride document.
func (r *MongoRideRepo) Create(ride *models.RideRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	ride.CreatedAt = now
	ride.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, ride)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetByID retrieves a ride by its unique ID.
func (r *MongoRideRepo) GetByID(id string) (*models.RideRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ride models.RideRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ride); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ride with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch ride with id %s: %w", id, err)
	}
	return &ride, nil
}

// UpdateStatus sets the lifecycle status of a ride.
func (r *MongoRideRepo) UpdateStatus(id string, status models.RideStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for ride %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("ride with id %s not found", id)
	}
	return nil
}

// MarkNotificationSent records that the initial new-request email went out.
func (r *MongoRideRepo) MarkNotificationSent(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"notification_sent": true,
		"updated_at":        time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent for ride %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("ride with id %s not found", id)
	}
	return nil
}

// MarkReminderSent flips one reminder flag, but only while it is still false
// and the ride has not been cancelled. The conditional filter makes the
// check-and-flip a single atomic update at the store level.
func (r *MongoRideRepo) MarkReminderSent(id string, flag ReminderFlag) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":         id,
		string(flag): false,
		"status":     bson.M{"$ne": models.RideStatusCancelled},
	}
	update := bson.M{"$set": bson.M{
		string(flag): true,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark %s for ride %s: %w", flag, id, err)
	}
	return result.MatchedCount > 0, nil
}
