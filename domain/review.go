package domain

// Review es la opinión de un usuario sobre una propiedad. Solo lectura.
type Review struct {
	ID         string     `json:"id"`
	PropertyID PropertyID `json:"propertyId"`
	Author     string     `json:"author"`
	Rating     float64    `json:"rating"`
	Comment    string     `json:"comment"`
	Date       string     `json:"date,omitempty"`
}
