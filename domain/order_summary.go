package domain

import "time"

// OrderSummary es el detalle de precio que se muestra antes de confirmar
type OrderSummary struct {
	PropertyName string  `json:"propertyName"`
	StartDate    string  `json:"startDate"`
	TotalNights  int     `json:"totalNights"`
	Subtotal     float64 `json:"price"`
	BookingFee   float64 `json:"bookingFee"`
	GrandTotal   float64 `json:"grandTotal"`
}

// NewOrderSummary arma el resumen a partir de una cotización válida.
// El total general es la tarifa de reserva más el subtotal de la estadía.
func NewOrderSummary(p Property, q Quote, bookingFee float64) OrderSummary {
	return OrderSummary{
		PropertyName: p.Name,
		StartDate:    q.CheckIn.Format(DateLayout),
		TotalNights:  q.Nights,
		Subtotal:     q.Total,
		BookingFee:   bookingFee,
		GrandTotal:   bookingFee + q.Total,
	}
}

// CancellationPolicy es la política de cancelación derivada del check-in
type CancellationPolicy struct {
	FreeCancellationBefore time.Time
	PartialRefundBefore    time.Time
	GroundRules            []string
}

// DefaultGroundRules son las reglas de la casa que se muestran siempre
var DefaultGroundRules = []string{
	"Follow the house rules",
	"Treat your Host's home like your own",
}

// NewCancellationPolicy: cancelación gratis hasta el día anterior al
// check-in y reembolso parcial hasta el propio día del check-in.
func NewCancellationPolicy(checkIn time.Time) CancellationPolicy {
	in := MidnightUTC(checkIn)
	return CancellationPolicy{
		FreeCancellationBefore: in.AddDate(0, 0, -1),
		PartialRefundBefore:    in,
		GroundRules:            DefaultGroundRules,
	}
}

// Summary es el texto que acompaña a la política
func (c CancellationPolicy) Summary() string {
	return "Free cancellation before " + c.FreeCancellationBefore.Format("Jan 2") +
		". Cancel before check-in on " + c.PartialRefundBefore.Format("Jan 2") + " for a partial refund."
}
