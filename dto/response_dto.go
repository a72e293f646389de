package dto

import "listing-app/domain"

// PropertiesResponse es el listado del catálogo
type PropertiesResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"total"`
}

// PropertyDetailResponse es una propiedad con sus reviews
type PropertyDetailResponse struct {
	Property domain.Property `json:"property"`
	Reviews  []domain.Review `json:"reviews"`
}

// HealthResponse es la respuesta de /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse representa una respuesta de error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse representa una respuesta exitosa
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
