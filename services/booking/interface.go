package booking

import "washbay/models"

// BookingService defines the operations the API and the web UI drive.
type BookingService interface {
	GetAllBookings() ([]models.Booking, error)
	GetBookingByID(id int) (*models.Booking, error)
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	UpdateBooking(id int, fields map[string]interface{}) (*models.Booking, error)
	DeleteBooking(id int) error
}
