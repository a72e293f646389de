package domain

import (
	"strings"
	"sync"
)

// FormStatus es el estado del formulario de reserva
type FormStatus int

const (
	FormIdle FormStatus = iota
	FormSubmitting
	FormSuccess
	FormFailed
)

func (s FormStatus) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSuccess:
		return "success"
	case FormFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FormState es un valor etiquetado: el significado de Message depende de
// Status. En Idle es un error de validación (o vacío), en Success el aviso
// de confirmación y en Failed el mensaje genérico de reintento.
type FormState struct {
	Status  FormStatus
	Message string
}

// BookingForm guarda los campos del formulario de una propiedad y su estado.
// Es seguro para uso concurrente.
type BookingForm struct {
	mu         sync.Mutex
	propertyID PropertyID
	rate       float64
	checkIn    string
	checkOut   string
	guests     int
	state      FormState
}

// NewBookingForm crea un formulario vacío para la propiedad
func NewBookingForm(propertyID PropertyID, rate float64) *BookingForm {
	return &BookingForm{
		propertyID: propertyID,
		rate:       rate,
		guests:     DefaultGuests,
	}
}

// FormSnapshot es una copia inmutable del formulario lista para renderizar
type FormSnapshot struct {
	PropertyID     PropertyID `json:"propertyId"`
	Rate           float64    `json:"rate"`
	CheckIn        string     `json:"checkInDate"`
	CheckOut       string     `json:"checkOutDate"`
	Guests         int        `json:"guests"`
	Nights         int        `json:"nights"`
	Total          float64    `json:"totalPrice"`
	Status         string     `json:"status"`
	Error          string     `json:"error,omitempty"`
	Success        string     `json:"success,omitempty"`
	SubmitDisabled bool       `json:"submitDisabled"`
}

// Snapshot devuelve el estado actual con el precio derivado recalculado
func (f *BookingForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := FormSnapshot{
		PropertyID:     f.propertyID,
		Rate:           f.rate,
		CheckIn:        f.checkIn,
		CheckOut:       f.checkOut,
		Guests:         f.guests,
		Status:         f.state.Status.String(),
		SubmitDisabled: f.state.Status == FormSubmitting,
	}
	if q, err := QuoteStay(f.checkIn, f.checkOut, f.rate); err == nil && q.Valid() {
		snap.Nights = q.Nights
		snap.Total = q.Total
	}
	switch f.state.Status {
	case FormIdle, FormFailed:
		snap.Error = f.state.Message
	case FormSuccess:
		snap.Success = f.state.Message
	}
	return snap
}

// State devuelve el estado actual
func (f *BookingForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetRate actualiza la tarifa con la última versión de la propiedad.
// Mientras hay un envío en curso se conserva la tarifa con la que se cotizó.
func (f *BookingForm) SetRate(rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Status != FormSubmitting {
		f.rate = rate
	}
}

// Edit reemplaza los campos y vuelve a Idle. Un número de huéspedes fuera de
// rango se rechaza y se conserva el valor anterior.
func (f *BookingForm) Edit(checkIn, checkOut string, guests int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Status == FormSubmitting {
		return ErrSubmissionInFlight
	}

	f.checkIn = strings.TrimSpace(checkIn)
	f.checkOut = strings.TrimSpace(checkOut)
	f.state = FormState{Status: FormIdle}

	if !ValidGuests(guests) {
		f.state.Message = MsgInvalidGuests
		return &ValidationError{Message: MsgInvalidGuests}
	}
	f.guests = guests
	return nil
}

// BeginSubmit valida el formulario y, si es válido, pasa a Submitting y
// devuelve el borrador a enviar. Los errores de validación dejan el
// formulario en Idle con el mensaje correspondiente.
func (f *BookingForm) BeginSubmit() (Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Status == FormSubmitting {
		return Booking{}, ErrSubmissionInFlight
	}

	q, err := QuoteStay(f.checkIn, f.checkOut, f.rate)
	if err == nil && !q.Valid() {
		err = &ValidationError{Message: MsgInvalidDates}
	}
	if err != nil {
		f.state = FormState{Status: FormIdle, Message: err.Error()}
		return Booking{}, err
	}

	f.state = FormState{Status: FormSubmitting}
	return Booking{
		PropertyID:   f.propertyID,
		CheckInDate:  f.checkIn,
		CheckOutDate: f.checkOut,
		Guests:       f.guests,
		TotalPrice:   q.Total,
	}, nil
}

// Complete cierra el envío en curso. Con éxito limpia los campos; con error
// los conserva y deja el mensaje genérico.
func (f *BookingForm) Complete(submitErr error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Status != FormSubmitting {
		return ErrNotSubmitting
	}

	if submitErr != nil {
		f.state = FormState{Status: FormFailed, Message: MsgBookingFailed}
		return nil
	}

	f.checkIn = ""
	f.checkOut = ""
	f.guests = DefaultGuests
	f.state = FormState{Status: FormSuccess, Message: MsgBookingSucceeded}
	return nil
}
