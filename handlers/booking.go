package handlers

import (
	"net/http"
	"strconv"

	"washbay/models"
	"washbay/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking REST API.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler with the given service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingID parses the :id route parameter. A non-numeric id is a 400.
func bookingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return 0, false
	}
	return id, true
}

// GetAllBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetAllBookings()
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.Service.GetBookingByID(id)
	if err != nil {
		if booking.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("Failed to fetch booking", zap.Int("bookingId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBookingHandler handles POST /api/bookings. The server assigns the
// bookingId; any identifier in the payload is discarded.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b.BookingID = 0

	created, err := h.Service.CreateBooking(&b)
	if err != nil {
		h.Logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBookingHandler handles PUT /api/bookings/:id. The payload may be
// partial; bookingId is ignored if present.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateBooking(id, fields)
	if err != nil {
		if booking.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("Failed to update booking", zap.Int("bookingId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteBooking(id); err != nil {
		if booking.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("Failed to delete booking", zap.Int("bookingId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
