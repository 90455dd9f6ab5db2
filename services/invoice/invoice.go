// Package invoice builds the printable document for a single booking.
package invoice

import (
	"fmt"
	"math"
	"time"

	"washbay/models"
)

// TaxRate is the fixed tax applied to the service subtotal.
const TaxRate = 0.18

// Build computes an invoice for the given booking. It is a pure function:
// the invoice number is derived from the booking, the subtotal is the booking
// price (zero when absent), tax is 18% of the subtotal and the total is their
// sum, rounded to cents.
func Build(b *models.Booking, issuedAt time.Time) models.Invoice {
	subtotal := b.PriceValue()
	tax := round2(subtotal * TaxRate)

	return models.Invoice{
		InvoiceNumber: Number(b, issuedAt),
		BookingID:     b.BookingID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		CarLabel:      b.CarLabel(),
		ServiceType:   b.ServiceType,
		AddOns:        b.AddOns,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		Subtotal:      subtotal,
		TaxRate:       TaxRate,
		Tax:           tax,
		Total:         round2(subtotal + tax),
		IssuedAt:      issuedAt,
	}
}

// Number returns the synthetic invoice number for a booking, e.g.
// "INV-7-20251001".
func Number(b *models.Booking, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%d-%s", b.BookingID, issuedAt.Format("20060102"))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
