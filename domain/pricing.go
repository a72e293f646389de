package domain

import (
	"math"
	"strings"
	"time"
)

// DateLayout es el formato de los inputs type="date"
const DateLayout = "2006-01-02"

// ParseStayDate interpreta una fecha de estadía. Acepta "YYYY-MM-DD" y
// también RFC 3339, quedándose siempre con el día calendario a medianoche UTC.
func ParseStayDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err == nil {
		return t, nil
	}
	t, rfcErr := time.Parse(time.RFC3339, value)
	if rfcErr != nil {
		return time.Time{}, err
	}
	return MidnightUTC(t), nil
}

// MidnightUTC fija t a la medianoche UTC de su propio día calendario
func MidnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween devuelve ceil(checkOut - checkIn) en días. Ambas fechas se
// llevan a medianoche UTC antes de restar, así un cambio de horario no
// agrega ni quita una noche. Puede ser cero o negativo.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := MidnightUTC(checkOut).Sub(MidnightUTC(checkIn))
	return int(math.Ceil(diff.Hours() / 24))
}

// TotalPrice es noches × tarifa si hay al menos una noche, si no 0
func TotalPrice(checkIn, checkOut time.Time, rate float64) float64 {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0
	}
	return float64(nights) * rate
}

// Quote es el resultado del cálculo de precio para una estadía
type Quote struct {
	CheckIn  time.Time `json:"-"`
	CheckOut time.Time `json:"-"`
	Rate     float64   `json:"rate"`
	Nights   int       `json:"nights"`
	Total    float64   `json:"total"`
}

// Valid indica si la cotización permite reservar
func (q Quote) Valid() bool {
	return q.Nights > 0 && q.Total > 0
}

// QuoteStay parsea ambas fechas y calcula la cotización. Si falta alguna
// fecha o no se puede interpretar devuelve un ValidationError.
func QuoteStay(checkIn, checkOut string, rate float64) (Quote, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return Quote{Rate: rate}, &ValidationError{Message: MsgMissingDates}
	}
	in, err := ParseStayDate(checkIn)
	if err != nil {
		return Quote{Rate: rate}, &ValidationError{Message: MsgInvalidDates}
	}
	out, err := ParseStayDate(checkOut)
	if err != nil {
		return Quote{Rate: rate}, &ValidationError{Message: MsgInvalidDates}
	}

	q := Quote{CheckIn: in, CheckOut: out, Rate: rate, Nights: NightsBetween(in, out)}
	q.Total = TotalPrice(in, out, rate)
	if q.Total <= 0 {
		q.Nights = 0
	}
	return q, nil
}
