package bookingRepo

import "washbay/models"

// BookingRepository defines persistence operations for booking records.
type BookingRepository interface {
	// GetAll returns every booking ordered by ascending bookingId.
	GetAll() ([]models.Booking, error)
	// GetByID returns the booking with the given bookingId or a NotFoundError.
	GetByID(id int) (*models.Booking, error)
	// Create assigns the next sequential bookingId and persists the record.
	Create(booking *models.Booking) error
	// Update applies the given fields to the matching record and returns the
	// updated document. The bookingId field is never modified.
	Update(id int, fields map[string]interface{}) (*models.Booking, error)
	// Delete removes the record with the given bookingId.
	Delete(id int) error
}

// NotFoundError signals that no booking matches the requested bookingId.
type NotFoundError struct {
	BookingID int
}

func (e *NotFoundError) Error() string {
	return "Booking not found"
}
