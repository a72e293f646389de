package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"listing-app/domain"
)

// PropertyAPIRepository define las operaciones contra la API de propiedades
type PropertyAPIRepository interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	GetProperty(ctx context.Context, id domain.PropertyID) (*domain.Property, error)
	GetReviews(ctx context.Context, id domain.PropertyID) ([]domain.Review, error)
	CreateBooking(ctx context.Context, booking domain.Booking) error
}

// APIError se devuelve cuando la API responde con un status no 2xx
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implementa la interfaz error
func (e *APIError) Error() string {
	return fmt.Sprintf("properties API %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// maxErrorBody limita cuánto del body de error guardamos para el log
const maxErrorBody = 512

// propertyAPIRepository implementa PropertyAPIRepository sobre HTTP
type propertyAPIRepository struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewPropertyAPIRepository crea el cliente de la API. Si httpClient es nil
// se usa uno con el timeout indicado.
func NewPropertyAPIRepository(baseURL, token string, timeout time.Duration, httpClient *http.Client) PropertyAPIRepository {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &propertyAPIRepository{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// ListProperties hace GET /properties
func (r *propertyAPIRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var properties []domain.Property
	if err := r.do(ctx, http.MethodGet, "/properties", nil, &properties); err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	return properties, nil
}

// GetProperty hace GET /properties/{id}. Un 404 se traduce a ErrPropertyNotFound.
func (r *propertyAPIRepository) GetProperty(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	if id == "" {
		return nil, fmt.Errorf("property ID cannot be empty")
	}

	var property domain.Property
	err := r.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id.String()), nil, &property)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("property %s: %w", id, domain.ErrPropertyNotFound)
		}
		return nil, err
	}
	if property.ID == "" {
		property.ID = id
	}
	return &property, nil
}

// GetReviews hace GET /properties/{id}/reviews
func (r *propertyAPIRepository) GetReviews(ctx context.Context, id domain.PropertyID) ([]domain.Review, error) {
	if id == "" {
		return nil, fmt.Errorf("property ID cannot be empty")
	}

	var reviews []domain.Review
	if err := r.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id.String())+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// CreateBooking hace POST /bookings. Cualquier 2xx es éxito; el body de la
// respuesta no tiene esquema documentado y se descarta.
func (r *propertyAPIRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	return r.do(ctx, http.MethodPost, "/bookings", booking, nil)
}

// do ejecuta el request y decodifica la respuesta JSON en out (si no es nil)
func (r *propertyAPIRepository) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error executing request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from %s %s: %w", method, path, err)
	}
	return nil
}
