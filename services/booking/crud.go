package booking

import (
	"fmt"

	bookingRepo "washbay/database/repository/booking"
	"washbay/models"
)

// DefaultBookingService implements BookingService over a BookingRepository.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Cache *ListCache
}

// GetAllBookings returns every booking ordered by ascending bookingId.
func (svc *DefaultBookingService) GetAllBookings() ([]models.Booking, error) {
	if cached, ok := svc.Cache.Get(); ok {
		return cached, nil
	}
	bookings, err := svc.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	svc.Cache.Set(bookings)
	return bookings, nil
}

// GetBookingByID returns a single booking or a repository NotFoundError.
func (svc *DefaultBookingService) GetBookingByID(id int) (*models.Booking, error) {
	return svc.Repo.GetByID(id)
}

// CreateBooking persists a new booking. The repository assigns bookingId and
// createdAt; status defaults to Pending when the payload omits it.
func (svc *DefaultBookingService) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if booking.Status == "" {
		booking.Status = models.StatusPending
	}
	if err := svc.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	svc.Cache.Invalidate()
	return booking, nil
}

// UpdateBooking applies the given fields to an existing booking. bookingId in
// the payload is ignored; the identifier is immutable.
func (svc *DefaultBookingService) UpdateBooking(id int, fields map[string]interface{}) (*models.Booking, error) {
	updated, err := svc.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	svc.Cache.Invalidate()
	return updated, nil
}

// DeleteBooking permanently removes a booking. Its bookingId is never reused.
func (svc *DefaultBookingService) DeleteBooking(id int) error {
	if err := svc.Repo.Delete(id); err != nil {
		return err
	}
	svc.Cache.Invalidate()
	return nil
}
