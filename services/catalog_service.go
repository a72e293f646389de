package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"listing-app/domain"
	"listing-app/repositories"
)

// catalogCacheKey es la clave del listado completo de propiedades
const catalogCacheKey = "catalog:properties"

// CatalogService define las operaciones del catálogo de propiedades
type CatalogService interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	InvalidateCatalog()
}

// catalogService implementa CatalogService con caché opcional
type catalogService struct {
	api    repositories.PropertyAPIRepository
	cache  repositories.CacheRepository
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// NewCatalogService crea el servicio. Con cache nil o ttl 0 cada llamada va
// a la API.
func NewCatalogService(api repositories.PropertyAPIRepository, cache repositories.CacheRepository, ttl time.Duration, logger *zap.SugaredLogger) CatalogService {
	return &catalogService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *catalogService) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

// ListProperties devuelve el catálogo, consultando primero el caché
func (s *catalogService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	if s.cacheEnabled() {
		if properties, found := s.cache.Get(catalogCacheKey); found {
			return properties, nil
		}
	}

	properties, err := s.api.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching properties: %w", err)
	}
	s.logger.Debugf("ListProperties: API returned %d properties", len(properties))

	if s.cacheEnabled() {
		s.cache.Set(catalogCacheKey, properties, s.ttl)
	}
	return properties, nil
}

// InvalidateCatalog borra el listado cacheado
func (s *catalogService) InvalidateCatalog() {
	if s.cache == nil {
		return
	}
	s.cache.Delete(catalogCacheKey)
	s.logger.Infof("Catalog cache invalidated")
}
