package models

// Booking lifecycle statuses.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Statuses lists the lifecycle stages in their fixed priority order.
var Statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// ServiceTypes is the fixed service catalog offered by the wash.
var ServiceTypes = []string{
	"Basic Wash",
	"Premium Wash",
	"Deluxe Wash",
	"Full Detail",
	"Interior Cleaning",
	"Exterior Wax",
	"Engine Bay Cleaning",
	"Ceramic Coating",
}

// AddOns is the fixed catalog of supplementary services.
var AddOns = []string{
	"Interior Cleaning",
	"Wax Protection",
	"Tire Shine",
	"Engine Cleaning",
	"Leather Treatment",
	"Paint Protection",
}

// TimeSlots enumerates the hour-long appointment windows.
var TimeSlots = []string{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"01:00 PM - 02:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
}

// CarTypes is the vehicle type selection offered by the booking form.
var CarTypes = []string{
	"Sedan",
	"SUV",
	"Hatchback",
	"Coupe",
	"Convertible",
	"Pickup Truck",
	"Van",
	"Motorcycle",
}

// StatusRank returns the sort priority of a status. Unrecognized statuses
// rank after all known ones.
func StatusRank(status string) int {
	for i, s := range Statuses {
		if s == status {
			return i
		}
	}
	return len(Statuses)
}

// ValidStatus reports whether status is one of the four lifecycle stages.
func ValidStatus(status string) bool {
	return StatusRank(status) < len(Statuses)
}

// NextStatuses returns the transitions the UI offers from the given status:
// Pending may be confirmed or cancelled, Confirmed may be completed or
// cancelled. Completed and Cancelled are terminal.
func NextStatuses(status string) []string {
	switch status {
	case StatusPending:
		return []string{StatusConfirmed, StatusCancelled}
	case StatusConfirmed:
		return []string{StatusCompleted, StatusCancelled}
	default:
		return nil
	}
}
