package domain

import "errors"

var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
	ErrNotSubmitting      = errors.New("booking form is not submitting")
)

// Mensajes que ve el usuario. Los errores de red nunca se muestran tal cual.
const (
	MsgMissingDates       = "Please select check-in and check-out dates"
	MsgInvalidDates       = "Invalid dates selected"
	MsgInvalidGuests      = "Guests must be between 1 and 6"
	MsgBookingFailed      = "Failed to create booking. Please try again."
	MsgBookingSucceeded   = "Booking successful! We'll send you a confirmation email."
	MsgLoadPropertiesFail = "Failed to load properties"
	MsgLoadDetailFail     = "Failed to load property details."
	MsgPropertyNotFound   = "Property not found"
)

// ValidationError es un error de validación local: nunca llega a la red
type ValidationError struct {
	Message string
}

// Error implementa la interfaz error
func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError indica si err (o algo que envuelve) es de validación
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
