package models

import "time"

// CarDetails describes the vehicle a booking is for.
type CarDetails struct {
	Make         string `bson:"make" json:"make"`
	Model        string `bson:"model" json:"model"`
	Year         int    `bson:"year" json:"year"`
	Type         string `bson:"type,omitempty" json:"type,omitempty"`
	Color        string `bson:"color,omitempty" json:"color,omitempty"`
	LicensePlate string `bson:"licensePlate,omitempty" json:"licensePlate,omitempty"`
}

// Booking represents one car-wash service appointment record.
type Booking struct {
	BookingID     int        `bson:"bookingId" json:"bookingId"`           // Sequential identifier, assigned server-side, immutable.
	CustomerName  string     `bson:"customerName" json:"customerName"`     // Required at creation.
	CustomerPhone string     `bson:"customerPhone" json:"customerPhone"`   // Required at creation.
	CustomerEmail string     `bson:"customerEmail" json:"customerEmail"`   // Required at creation.
	CarDetails    CarDetails `bson:"carDetails" json:"carDetails"`         // Make, model and year required.
	ServiceType   string     `bson:"serviceType" json:"serviceType"`       // One of ServiceTypes.
	AddOns        []string   `bson:"addOns,omitempty" json:"addOns"`       // Subset of AddOns; order irrelevant.
	Date          string     `bson:"date" json:"date"`                     // Calendar date, "YYYY-MM-DD".
	TimeSlot      string     `bson:"timeSlot" json:"timeSlot"`             // One of TimeSlots.
	Duration      *int       `bson:"duration,omitempty" json:"duration,omitempty"` // Minutes.
	Price         *float64   `bson:"price,omitempty" json:"price,omitempty"`
	Status        string     `bson:"status" json:"status"` // Pending, Confirmed, Completed or Cancelled.
	Rating        *int       `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5, meaningful once Completed.
	Notes         string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Location      string     `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"` // Set once at creation.
}

// PriceValue returns the booking price, treating an absent price as zero.
// A value receiver keeps the method reachable from templates ranging over
// booking slices.
func (b Booking) PriceValue() float64 {
	if b.Price == nil {
		return 0
	}
	return *b.Price
}

// CarLabel returns the "make model" string the search filter matches against.
func (b Booking) CarLabel() string {
	return b.CarDetails.Make + " " + b.CarDetails.Model
}
