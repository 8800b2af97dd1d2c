package httperr

import "errors"

// BusinessError is a domain rule violation identified by a stable code that
// handlers translate into an HTTP response. Codes double as user-facing
// reason identifiers (slot_taken, invalid_state, too_soon, ...).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
