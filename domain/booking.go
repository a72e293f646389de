package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

const (
	MinGuests     = 1
	MaxGuests     = 6
	DefaultGuests = 1
)

// Booking es el borrador que se envía a POST /bookings
type Booking struct {
	PropertyID   PropertyID `json:"propertyId" validate:"required"`
	CheckInDate  string     `json:"checkInDate" validate:"required"`
	CheckOutDate string     `json:"checkOutDate" validate:"required"`
	Guests       int        `json:"guests" validate:"min=1,max=6"`
	TotalPrice   float64    `json:"totalPrice" validate:"gt=0"`
}

var bookingValidator = validator.New()

// ValidateBooking revisa el borrador antes de mandarlo a la API.
// Además de los tags comprueba que el total coincida con las fechas.
func ValidateBooking(b Booking, rate float64) error {
	if err := bookingValidator.Struct(b); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ValidationError{Message: messageFor(fieldErrs[0])}
		}
		return &ValidationError{Message: err.Error()}
	}

	q, err := QuoteStay(b.CheckInDate, b.CheckOutDate, rate)
	if err != nil {
		return err
	}
	if !q.Valid() {
		return &ValidationError{Message: MsgInvalidDates}
	}
	if toCents(q.Total) != toCents(b.TotalPrice) {
		return &ValidationError{Message: fmt.Sprintf("total price %.2f does not match %d nights at %.2f", b.TotalPrice, q.Nights, rate)}
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "CheckInDate", "CheckOutDate":
		return MsgMissingDates
	case "Guests":
		return MsgInvalidGuests
	case "TotalPrice":
		return MsgInvalidDates
	default:
		return fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
	}
}

// ValidGuests indica si la cantidad de huéspedes está en rango
func ValidGuests(guests int) bool {
	return guests >= MinGuests && guests <= MaxGuests
}

// GuestOptions son las opciones del selector de huéspedes
func GuestOptions() []int {
	opts := make([]int, 0, MaxGuests)
	for n := MinGuests; n <= MaxGuests; n++ {
		opts = append(opts, n)
	}
	return opts
}

// toCents redondea un monto a centavos para comparar totales
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
