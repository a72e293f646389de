package services

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"

	"listing-app/domain"
)

// defaultMaxForms es el máximo de formularios en memoria antes de que el LRU
// empiece a descartar los menos usados
const defaultMaxForms = 10000

// FormRegistry guarda los formularios de reserva en memoria, uno por
// sesión y propiedad. Los formularios sin uso expiran después de ttl.
// Los que tienen un envío en curso quedan fijados aparte para que el LRU no
// los pierda antes de que llegue el resultado.
type FormRegistry struct {
	// mu hace atómico el get-or-create de Form
	mu       sync.Mutex
	forms    *ccache.Cache[*domain.BookingForm]
	inFlight map[string]*domain.BookingForm
	ttl      time.Duration
}

// NewFormRegistry crea el registro
func NewFormRegistry(ttl time.Duration) *FormRegistry {
	return newFormRegistry(ttl, defaultMaxForms)
}

func newFormRegistry(ttl time.Duration, maxForms int64) *FormRegistry {
	return &FormRegistry{
		forms:    ccache.New(ccache.Configure[*domain.BookingForm]().MaxSize(maxForms)),
		inFlight: make(map[string]*domain.BookingForm),
		ttl:      ttl,
	}
}

func formKey(formID string, propertyID domain.PropertyID) string {
	return formID + ":" + propertyID.String()
}

// Form devuelve el formulario existente o crea uno nuevo. La tarifa se
// actualiza con el precio actual de la propiedad.
func (r *FormRegistry) Form(formID string, property domain.Property) *domain.BookingForm {
	key := formKey(formID, property.ID)

	r.mu.Lock()
	item, _ := r.forms.Fetch(key, r.ttl, func() (*domain.BookingForm, error) {
		if form, ok := r.inFlight[key]; ok {
			return form, nil
		}
		return domain.NewBookingForm(property.ID, property.Price), nil
	})
	item.Extend(r.ttl)
	r.mu.Unlock()

	form := item.Value()
	form.SetRate(property.Price)
	return form
}

// Lookup devuelve el formulario si existe, sin crearlo
func (r *FormRegistry) Lookup(formID string, propertyID domain.PropertyID) (*domain.BookingForm, bool) {
	key := formKey(formID, propertyID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if item := r.forms.Get(key); item != nil && !item.Expired() {
		item.Extend(r.ttl)
		return item.Value(), true
	}
	if form, ok := r.inFlight[key]; ok {
		r.forms.Set(key, form, r.ttl)
		return form, true
	}
	return nil, false
}

// Pin fija el formulario mientras dura un envío. La función devuelta lo
// suelta y lo vuelve a dejar en el caché con el resultado.
func (r *FormRegistry) Pin(formID string, propertyID domain.PropertyID, form *domain.BookingForm) (release func()) {
	key := formKey(formID, propertyID)

	r.mu.Lock()
	r.inFlight[key] = form
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.inFlight, key)
		r.forms.Set(key, form, r.ttl)
	}
}

// Stop detiene la goroutine interna del caché
func (r *FormRegistry) Stop() {
	r.forms.Stop()
}
