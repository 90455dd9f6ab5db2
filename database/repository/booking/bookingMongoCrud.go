// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"washbay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll retrieves all bookings ordered by ascending bookingId.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "bookingId", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByID retrieves a booking by its bookingId.
func (r *MongoBookingRepo) GetByID(id int) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{BookingID: id}
		}
		return nil, fmt.Errorf("failed to fetch booking with id %d: %w", id, err)
	}
	return &booking, nil
}

// Create assigns the next sequential bookingId, stamps createdAt and inserts
// the document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	id, err := r.nextID()
	if err != nil {
		return err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.BookingID = id
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update applies the given fields to the matching record. Any bookingId in
// the payload is dropped so the identifier stays immutable, as is createdAt.
func (r *MongoBookingRepo) Update(id int, fields map[string]interface{}) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	delete(fields, "bookingId")
	delete(fields, "createdAt")

	// Mongo rejects an empty $set; with nothing left to change the current
	// document is the answer.
	if len(fields) == 0 {
		return r.GetByID(id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"bookingId": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{BookingID: id}
		}
		return nil, fmt.Errorf("failed to update booking with id %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a booking by its bookingId.
func (r *MongoBookingRepo) Delete(id int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"bookingId": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{BookingID: id}
	}
	return nil
}
