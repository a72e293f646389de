package templates

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	"listing-app/domain"
)

//go:embed *.tmpl
var files embed.FS

// Funcs son las funciones disponibles en las vistas
var Funcs = template.FuncMap{
	"money":       Money,
	"nightsLabel": NightsLabel,
	"guestsLabel": GuestsLabel,
	"shortDate":   ShortDate,
	"today":       Today,
	"guestOptions": func() []int {
		return domain.GuestOptions()
	},
	"stars": func(rating float64) string {
		n := int(math.Round(rating))
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
}

// Load parsea todas las vistas embebidas
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs).ParseFS(files, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return tmpl, nil
}

// Money formatea un monto sin decimales si es entero ("$300", "$55.50")
func Money(amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// NightsLabel devuelve "1 night" o "n nights"
func NightsLabel(n int) string {
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}

// GuestsLabel devuelve "1 guest" o "n guests"
func GuestsLabel(n int) string {
	if n == 1 {
		return "1 guest"
	}
	return fmt.Sprintf("%d guests", n)
}

// ShortDate formatea una fecha como "Jan 2"
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// Today es el mínimo del input de fecha
func Today() string {
	return time.Now().UTC().Format(domain.DateLayout)
}
