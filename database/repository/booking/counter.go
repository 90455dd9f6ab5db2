// File: database/repository/booking/counter.go
package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterID = "bookingId"

// seedCounter raises the booking counter to the highest bookingId already in
// the collection. The high-water mark must survive restarts so deleted IDs
// are never reassigned.
func (r *MongoBookingRepo) seedCounter() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "bookingId", Value: -1}})
	var last struct {
		BookingID int `bson:"bookingId"`
	}
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read max bookingId: %w", err)
	}

	_, err = r.counters.UpdateOne(ctx,
		bson.M{"_id": counterID},
		bson.M{"$max": bson.M{"seq": last.BookingID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to seed counter: %w", err)
	}
	return nil
}

// nextID atomically increments and returns the booking sequence. Concurrent
// creates each get a distinct value; a failed insert afterwards leaves a gap
// but never a duplicate.
func (r *MongoBookingRepo) nextID() (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to increment booking counter: %w", err)
	}
	return counter.Seq, nil
}
