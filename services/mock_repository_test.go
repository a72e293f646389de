package services

import (
	"context"
	"sync"
	"time"

	"listing-app/domain"
)

// ============================================
// MOCK de la API de propiedades para los tests
// ============================================

// mockPropertyAPI simula la API de propiedades
type mockPropertyAPI struct {
	mu         sync.Mutex
	properties map[domain.PropertyID]domain.Property
	reviews    map[domain.PropertyID][]domain.Review

	listErr     error
	propertyErr error
	reviewsErr  error
	bookingErr  error

	// delay retrasa las lecturas; se corta si el contexto se cancela
	reviewsDelay time.Duration

	listCalls int
	bookings  []domain.Booking
}

func newMockPropertyAPI() *mockPropertyAPI {
	return &mockPropertyAPI{
		properties: map[domain.PropertyID]domain.Property{
			"1": {ID: "1", Name: "Casa de Piedra", Location: "Bariloche", Price: 100, Amenities: []string{"Wifi"}},
			"2": {ID: "2", Name: "Depto Centro", Location: "Córdoba", Price: 55.5},
		},
		reviews: map[domain.PropertyID][]domain.Review{
			"1": {{ID: "r1", PropertyID: "1", Author: "Lucía", Rating: 5, Comment: "Hermosa vista"}},
		},
	}
}

func (m *mockPropertyAPI) ListProperties(ctx context.Context) ([]domain.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Property, 0, len(m.properties))
	for _, p := range m.properties {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPropertyAPI) GetProperty(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.propertyErr != nil {
		return nil, m.propertyErr
	}
	p, ok := m.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (m *mockPropertyAPI) GetReviews(ctx context.Context, id domain.PropertyID) ([]domain.Review, error) {
	m.mu.Lock()
	delay, err := m.reviewsDelay, m.reviewsErr
	reviews := m.reviews[id]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (m *mockPropertyAPI) CreateBooking(ctx context.Context, booking domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bookingErr != nil {
		return m.bookingErr
	}
	m.bookings = append(m.bookings, booking)
	return nil
}

// mockCache es un caché en memoria sin expiración
type mockCache struct {
	mu    sync.Mutex
	items map[string][]domain.Property
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string][]domain.Property{}}
}

func (c *mockCache) Get(key string) ([]domain.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.items[key]
	return p, ok
}

func (c *mockCache) Set(key string, properties []domain.Property, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = properties
}

func (c *mockCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}
