package dto

import "listing-app/domain"

// BookingFormRequest es el POST del formulario HTML de reserva
// action=update solo recalcula, action=submit envía la reserva
type BookingFormRequest struct {
	CheckIn  string `form:"checkInDate"`
	CheckOut string `form:"checkOutDate"`
	Guests   int    `form:"guests"`
	Action   string `form:"action" binding:"omitempty,oneof=update submit"`
}

// IsSubmit indica si el usuario apretó "Reserve"
func (r BookingFormRequest) IsSubmit() bool {
	return r.Action == "submit"
}

// CreateBookingRequest es el body de POST /api/bookings
// totalPrice es opcional: si no viene se calcula
type CreateBookingRequest struct {
	PropertyID   domain.PropertyID `json:"propertyId" binding:"required"`
	CheckInDate  string            `json:"checkInDate" binding:"required"`
	CheckOutDate string            `json:"checkOutDate" binding:"required"`
	Guests       int               `json:"guests" binding:"required,min=1,max=6"`
	TotalPrice   float64           `json:"totalPrice,omitempty" binding:"omitempty,gt=0"`
}

// ToBooking convierte el request al borrador de dominio
func (r CreateBookingRequest) ToBooking() domain.Booking {
	return domain.Booking{
		PropertyID:   r.PropertyID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Guests:       r.Guests,
		TotalPrice:   r.TotalPrice,
	}
}

// QuoteRequest es el body de POST /api/bookings/quote
// Si viene propertyId se usa el precio de la propiedad; si no, price.
type QuoteRequest struct {
	PropertyID   domain.PropertyID `json:"propertyId,omitempty"`
	Price        float64           `json:"price,omitempty" binding:"omitempty,gt=0"`
	CheckInDate  string            `json:"checkInDate"`
	CheckOutDate string            `json:"checkOutDate"`
}

// QuoteResponse es la cotización devuelta por la API
type QuoteResponse struct {
	CheckInDate  string                      `json:"checkInDate"`
	CheckOutDate string                      `json:"checkOutDate"`
	Rate         float64                     `json:"rate"`
	Nights       int                         `json:"nights"`
	TotalPrice   float64                     `json:"totalPrice"`
	Summary      *domain.OrderSummary        `json:"summary,omitempty"`
	Cancellation *CancellationPolicyResponse `json:"cancellation,omitempty"`
}

// CancellationPolicyResponse es la política en formato JSON
type CancellationPolicyResponse struct {
	FreeCancellationBefore string   `json:"freeCancellationBefore"`
	PartialRefundBefore    string   `json:"partialRefundBefore"`
	Description            string   `json:"description"`
	GroundRules            []string `json:"groundRules"`
}

// NewCancellationPolicyResponse arma la respuesta a partir de la política
func NewCancellationPolicyResponse(p domain.CancellationPolicy) *CancellationPolicyResponse {
	return &CancellationPolicyResponse{
		FreeCancellationBefore: p.FreeCancellationBefore.Format(domain.DateLayout),
		PartialRefundBefore:    p.PartialRefundBefore.Format(domain.DateLayout),
		Description:            p.Summary(),
		GroundRules:            p.GroundRules,
	}
}
