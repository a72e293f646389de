package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PropertyID identifica una propiedad. El backend lo envía a veces como
// número y a veces como string, así que aceptamos ambos.
type PropertyID string

// UnmarshalJSON acepta 12 o "12"
func (id *PropertyID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PropertyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid property id %s: %w", string(data), err)
	}
	*id = PropertyID(n.String())
	return nil
}

// MarshalJSON devuelve un número solo cuando el ID ya está en forma
// canónica ("12"); "007" o "+5" siguen siendo strings.
func (id PropertyID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id PropertyID) String() string {
	return string(id)
}

// Property representa una propiedad de alquiler tal como la devuelve la API
type Property struct {
	ID          PropertyID `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Price       float64    `json:"price"`
	Bedrooms    int        `json:"bedrooms"`
	Bathrooms   int        `json:"bathrooms"`
	Rating      float64    `json:"rating"`
	Description string     `json:"description"`
	Amenities   []string   `json:"amenities"`
	Image       string     `json:"image,omitempty"`
}

// UnmarshalJSON acepta también la forma mínima del listado, que usa "title"
// en lugar de "name".
func (p *Property) UnmarshalJSON(data []byte) error {
	type plain Property
	var aux struct {
		plain
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Property(aux.plain)
	if p.Name == "" {
		p.Name = aux.Title
	}
	return nil
}

// HasAmenities indica si hay amenities para mostrar
func (p Property) HasAmenities() bool {
	return len(p.Amenities) > 0
}

// ImageOrPlaceholder devuelve la imagen de la propiedad o el placeholder
func (p Property) ImageOrPlaceholder() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

// PlaceholderImage se usa cuando la propiedad no tiene imagen
const PlaceholderImage = "/static/placeholder-property.jpg"

// PropertyDetail agrupa una propiedad con sus reviews. Solo se construye
// cuando ambas lecturas terminaron bien.
type PropertyDetail struct {
	Property Property `json:"property"`
	Reviews  []Review `json:"reviews"`
}
