package booking

import (
	"errors"

	bookingRepo "washbay/database/repository/booking"
)

// IsNotFound reports whether err signals a missing booking record.
func IsNotFound(err error) bool {
	var nf *bookingRepo.NotFoundError
	return errors.As(err, &nf)
}
