// Package forms validates booking input before it reaches the store, with the
// same per-field rules and messages the booking form shows inline.
package forms

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"washbay/models"

	"github.com/go-playground/validator/v10"
)

// BookingForm carries raw form input. Numeric fields stay strings so invalid
// optional input can be dropped instead of rejected.
type BookingForm struct {
	CustomerName  string   `form:"customerName" validate:"required,min2trim,alphaspace"`
	CustomerPhone string   `form:"customerPhone" validate:"required,phone10,phoneprefix"`
	CustomerEmail string   `form:"customerEmail" validate:"required,emailshape"`
	CarMake       string   `form:"carMake" validate:"required,min2trim"`
	CarModel      string   `form:"carModel" validate:"required,min2trim"`
	CarYear       string   `form:"carYear" validate:"required,caryear"`
	CarType       string   `form:"carType"`
	CarColor      string   `form:"carColor"`
	LicensePlate  string   `form:"licensePlate"`
	ServiceType   string   `form:"serviceType" validate:"required"`
	AddOns        []string `form:"addOns"`
	Date          string   `form:"date" validate:"required"`
	TimeSlot      string   `form:"timeSlot" validate:"required"`
	Duration      string   `form:"duration"`
	Price         string   `form:"price"`
	Status        string   `form:"status"`
	Rating        string   `form:"rating"`
	Notes         string   `form:"notes"`
	Location      string   `form:"location"`
}

var (
	alphaSpaceRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(v.RegisterValidation("min2trim", func(fl validator.FieldLevel) bool {
		return len(strings.TrimSpace(fl.Field().String())) >= 2
	}))
	must(v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRe.MatchString(strings.TrimSpace(fl.Field().String()))
	}))
	must(v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(strings.TrimSpace(fl.Field().String()))
	}))
	must(v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(nonDigitRe.ReplaceAllString(fl.Field().String(), "")) == 10
	}))
	must(v.RegisterValidation("phoneprefix", func(fl validator.FieldLevel) bool {
		digits := nonDigitRe.ReplaceAllString(fl.Field().String(), "")
		return digits != "" && digits[0] >= '6' && digits[0] <= '9'
	}))
	must(v.RegisterValidation("caryear", func(fl validator.FieldLevel) bool {
		year, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return year >= MinCarYear && year <= MaxCarYear()
	}))
	return v
}

// MinCarYear is the oldest accepted model year.
const MinCarYear = 1900

// MaxCarYear returns the newest accepted model year, current year + 1.
func MaxCarYear() int {
	return time.Now().Year() + 1
}

// message maps a failing field+tag to the inline message the form shows.
func message(field, tag string) string {
	switch field + "." + tag {
	case "CustomerName.required":
		return "Customer name is required"
	case "CustomerName.min2trim":
		return "Customer name must be at least 2 characters long"
	case "CustomerName.alphaspace":
		return "Customer name should only contain letters and spaces"
	case "CustomerPhone.required":
		return "Phone number is required"
	case "CustomerPhone.phone10":
		return "Phone number must be exactly 10 digits"
	case "CustomerPhone.phoneprefix":
		return "Phone number must start with 6, 7, 8, or 9"
	case "CustomerEmail.required":
		return "Email address is required"
	case "CustomerEmail.emailshape":
		return "Please enter a valid email address"
	case "CarMake.required":
		return "Car make is required"
	case "CarMake.min2trim":
		return "Car make must be at least 2 characters long"
	case "CarModel.required":
		return "Car model is required"
	case "CarModel.min2trim":
		return "Car model must be at least 2 characters long"
	case "CarYear.required":
		return "Car year is required"
	case "CarYear.caryear":
		return "Year must be between 1900 and " + strconv.Itoa(MaxCarYear())
	case "ServiceType.required":
		return "Service type is required"
	case "Date.required":
		return "Appointment date is required"
	case "TimeSlot.required":
		return "Time slot is required"
	default:
		return field + " is invalid"
	}
}

// Errors is the consolidated validation result: field-keyed messages plus the
// ordered list shown above the form.
type Errors struct {
	ByField map[string]string
	List    []string
}

// Any reports whether any field failed, which blocks submission.
func (e Errors) Any() bool {
	return len(e.List) > 0
}

// Validate runs all field rules at once and returns the active messages.
// Rules for a field stop at its first failure, matching per-field inline
// validation.
func Validate(form *BookingForm) Errors {
	errs := Errors{ByField: map[string]string{}}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.List = append(errs.List, err.Error())
		return errs
	}
	for _, fe := range verrs {
		if _, seen := errs.ByField[fe.StructField()]; seen {
			continue
		}
		msg := message(fe.StructField(), fe.Tag())
		errs.ByField[fe.StructField()] = msg
		errs.List = append(errs.List, msg)
	}
	return errs
}

// NormalizePhone strips non-digit characters and truncates to 10 digits.
func NormalizePhone(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}

// ParseOptionalInt coerces an optional integer field. Invalid input is
// dropped, not rejected.
func ParseOptionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// ParseOptionalFloat coerces an optional decimal field. Invalid input is
// dropped, not rejected.
func ParseOptionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

// ToBooking converts validated form input to a booking payload. The phone is
// stored normalized; year is already range-checked by Validate.
func (f *BookingForm) ToBooking() models.Booking {
	year, _ := strconv.Atoi(strings.TrimSpace(f.CarYear))
	status := f.Status
	if status == "" {
		status = models.StatusPending
	}
	return models.Booking{
		CustomerName:  strings.TrimSpace(f.CustomerName),
		CustomerPhone: NormalizePhone(f.CustomerPhone),
		CustomerEmail: strings.TrimSpace(f.CustomerEmail),
		CarDetails: models.CarDetails{
			Make:         strings.TrimSpace(f.CarMake),
			Model:        strings.TrimSpace(f.CarModel),
			Year:         year,
			Type:         f.CarType,
			Color:        f.CarColor,
			LicensePlate: f.LicensePlate,
		},
		ServiceType: f.ServiceType,
		AddOns:      f.AddOns,
		Date:        f.Date,
		TimeSlot:    f.TimeSlot,
		Duration:    ParseOptionalInt(f.Duration),
		Price:       ParseOptionalFloat(f.Price),
		Status:      status,
		Rating:      ParseOptionalInt(f.Rating),
		Notes:       f.Notes,
		Location:    f.Location,
	}
}

// FromBooking pre-populates a form from an existing record for editing.
func FromBooking(b *models.Booking) BookingForm {
	form := BookingForm{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		CarMake:       b.CarDetails.Make,
		CarModel:      b.CarDetails.Model,
		CarYear:       strconv.Itoa(b.CarDetails.Year),
		CarType:       b.CarDetails.Type,
		CarColor:      b.CarDetails.Color,
		LicensePlate:  b.CarDetails.LicensePlate,
		ServiceType:   b.ServiceType,
		AddOns:        b.AddOns,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		Status:        b.Status,
		Notes:         b.Notes,
		Location:      b.Location,
	}
	if b.Duration != nil {
		form.Duration = strconv.Itoa(*b.Duration)
	}
	if b.Price != nil {
		form.Price = strconv.FormatFloat(*b.Price, 'f', -1, 64)
	}
	if b.Rating != nil {
		form.Rating = strconv.Itoa(*b.Rating)
	}
	return form
}
