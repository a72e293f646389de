package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"listing-app/domain"
	"listing-app/repositories"
)

// BookingService define las operaciones de reserva
type BookingService interface {
	Quote(property domain.Property, checkIn, checkOut string) (domain.Quote, error)
	Summary(property domain.Property, checkIn, checkOut string) (domain.OrderSummary, domain.CancellationPolicy, error)
	FormSnapshot(formID string, property domain.Property) domain.FormSnapshot
	EditForm(formID string, property domain.Property, input FormInput) (domain.FormSnapshot, error)
	SubmitForm(ctx context.Context, formID string, property domain.Property, input FormInput) (domain.FormSnapshot, error)
	CreateBooking(ctx context.Context, property domain.Property, booking domain.Booking) (domain.Booking, error)
}

// FormInput son los valores que llegan del formulario HTML
type FormInput struct {
	CheckIn  string
	CheckOut string
	Guests   int
}

type bookingService struct {
	api        repositories.PropertyAPIRepository
	forms      *FormRegistry
	bookingFee float64
	logger     *zap.SugaredLogger
}

// NewBookingService crea una nueva instancia de BookingService
func NewBookingService(api repositories.PropertyAPIRepository, forms *FormRegistry, bookingFee float64, logger *zap.SugaredLogger) BookingService {
	return &bookingService{api: api, forms: forms, bookingFee: bookingFee, logger: logger}
}

// Quote calcula noches y total para la propiedad
func (s *bookingService) Quote(property domain.Property, checkIn, checkOut string) (domain.Quote, error) {
	return domain.QuoteStay(checkIn, checkOut, property.Price)
}

// Summary arma el resumen del pedido y la política de cancelación
func (s *bookingService) Summary(property domain.Property, checkIn, checkOut string) (domain.OrderSummary, domain.CancellationPolicy, error) {
	q, err := domain.QuoteStay(checkIn, checkOut, property.Price)
	if err != nil {
		return domain.OrderSummary{}, domain.CancellationPolicy{}, err
	}
	if !q.Valid() {
		return domain.OrderSummary{}, domain.CancellationPolicy{}, &domain.ValidationError{Message: domain.MsgInvalidDates}
	}
	return domain.NewOrderSummary(property, q, s.bookingFee), domain.NewCancellationPolicy(q.CheckIn), nil
}

// FormSnapshot devuelve el formulario de la sesión para renderizar. Un GET
// no registra formularios: si la sesión todavía no editó, se muestra uno vacío.
func (s *bookingService) FormSnapshot(formID string, property domain.Property) domain.FormSnapshot {
	form, ok := s.forms.Lookup(formID, property.ID)
	if !ok {
		return domain.NewBookingForm(property.ID, property.Price).Snapshot()
	}
	form.SetRate(property.Price)
	return form.Snapshot()
}

// EditForm actualiza los campos y recalcula el total
func (s *bookingService) EditForm(formID string, property domain.Property, input FormInput) (domain.FormSnapshot, error) {
	form := s.forms.Form(formID, property)
	err := form.Edit(input.CheckIn, input.CheckOut, input.Guests)
	return form.Snapshot(), err
}

// SubmitForm aplica los campos y envía la reserva. Los errores de
// validación no llegan a la API. Si la API falla el error se loguea y el
// formulario queda en Failed con el mensaje genérico.
func (s *bookingService) SubmitForm(ctx context.Context, formID string, property domain.Property, input FormInput) (domain.FormSnapshot, error) {
	form := s.forms.Form(formID, property)

	if err := form.Edit(input.CheckIn, input.CheckOut, input.Guests); err != nil {
		return form.Snapshot(), err
	}

	draft, err := form.BeginSubmit()
	if err != nil {
		return form.Snapshot(), err
	}
	release := s.forms.Pin(formID, property.ID, form)
	defer release()

	// El envío sigue aunque el navegador corte la conexión: el resultado
	// queda en el formulario para el próximo GET.
	submitErr := s.api.CreateBooking(context.WithoutCancel(ctx), draft)
	if submitErr != nil {
		s.logger.Errorw("Booking error",
			"property_id", draft.PropertyID,
			"check_in", draft.CheckInDate,
			"check_out", draft.CheckOutDate,
			"error", submitErr,
		)
		submitErr = fmt.Errorf("error creating booking: %w", submitErr)
	} else {
		s.logger.Infof("Booking created: property ID=%s, %s to %s, total=%.2f",
			draft.PropertyID, draft.CheckInDate, draft.CheckOutDate, draft.TotalPrice)
	}

	if err := form.Complete(submitErr); err != nil {
		return form.Snapshot(), err
	}
	return form.Snapshot(), submitErr
}

// CreateBooking valida y envía una reserva sin estado de formulario. Si el
// total viene en cero se calcula; si viene, tiene que coincidir.
func (s *bookingService) CreateBooking(ctx context.Context, property domain.Property, booking domain.Booking) (domain.Booking, error) {
	booking.PropertyID = property.ID

	if booking.TotalPrice == 0 {
		q, err := domain.QuoteStay(booking.CheckInDate, booking.CheckOutDate, property.Price)
		if err != nil {
			return booking, err
		}
		booking.TotalPrice = q.Total
	}

	if err := domain.ValidateBooking(booking, property.Price); err != nil {
		return booking, err
	}

	if err := s.api.CreateBooking(ctx, booking); err != nil {
		s.logger.Errorw("Booking error", "property_id", booking.PropertyID, "error", err)
		return booking, fmt.Errorf("error creating booking: %w", err)
	}
	return booking, nil
}

// IsSubmissionInFlight indica si err es por un envío ya en curso
func IsSubmissionInFlight(err error) bool {
	return errors.Is(err, domain.ErrSubmissionInFlight)
}
