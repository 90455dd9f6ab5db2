package invoice

import (
	"testing"
	"time"

	"washbay/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildComputesTaxAndTotal(t *testing.T) {
	price := 100.0
	b := &models.Booking{
		BookingID:    7,
		CustomerName: "Jane Smith",
		CarDetails:   models.CarDetails{Make: "Honda", Model: "Civic", Year: 2019},
		ServiceType:  "Full Detail",
		Date:         "2025-09-26",
		TimeSlot:     "02:00 PM - 03:00 PM",
		Price:        &price,
		Status:       models.StatusCompleted,
	}
	issued := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	inv := Build(b, issued)
	assert.Equal(t, "INV-7-20251001", inv.InvoiceNumber)
	assert.Equal(t, 100.0, inv.Subtotal)
	assert.Equal(t, 18.0, inv.Tax)
	assert.Equal(t, 118.0, inv.Total)
	assert.Equal(t, 0.18, inv.TaxRate)
	assert.Equal(t, "Honda Civic", inv.CarLabel)
}

func TestBuildRoundsToCents(t *testing.T) {
	price := 33.33
	b := &models.Booking{BookingID: 2, Price: &price}

	inv := Build(b, time.Now())
	assert.Equal(t, 6.0, inv.Tax)    // 5.9994 rounds to 6.00
	assert.Equal(t, 39.33, inv.Total)
}

func TestBuildWithAbsentPrice(t *testing.T) {
	b := &models.Booking{BookingID: 3}

	inv := Build(b, time.Now())
	assert.Zero(t, inv.Subtotal)
	assert.Zero(t, inv.Tax)
	assert.Zero(t, inv.Total)
}

func TestBuildIsPure(t *testing.T) {
	price := 50.0
	b := &models.Booking{BookingID: 4, Price: &price}
	issued := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	first := Build(b, issued)
	second := Build(b, issued)
	assert.Equal(t, first, second)
	assert.Equal(t, 50.0, *b.Price)
}
