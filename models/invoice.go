package models

import "time"

// Invoice represents the printable document generated for one booking.
type Invoice struct {
	InvoiceNumber string    `json:"invoiceNumber"` // Synthetic, derived from the booking.
	BookingID     int       `json:"bookingId"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	CarLabel      string    `json:"carLabel"`
	ServiceType   string    `json:"serviceType"`
	AddOns        []string  `json:"addOns"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"timeSlot"`
	Subtotal      float64   `json:"subtotal"`
	TaxRate       float64   `json:"taxRate"` // Fixed at 18%.
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	IssuedAt      time.Time `json:"issuedAt"`
}
