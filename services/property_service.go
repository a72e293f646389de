package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"listing-app/domain"
	"listing-app/repositories"
)

// PropertyService define las lecturas de una propiedad
type PropertyService interface {
	GetProperty(ctx context.Context, id domain.PropertyID) (*domain.Property, error)
	GetPropertyDetail(ctx context.Context, id domain.PropertyID) (*domain.PropertyDetail, error)
}

type propertyService struct {
	api    repositories.PropertyAPIRepository
	logger *zap.SugaredLogger
}

// NewPropertyService crea una nueva instancia de PropertyService
func NewPropertyService(api repositories.PropertyAPIRepository, logger *zap.SugaredLogger) PropertyService {
	return &propertyService{api: api, logger: logger}
}

// GetProperty obtiene solo la propiedad
func (s *propertyService) GetProperty(ctx context.Context, id domain.PropertyID) (*domain.Property, error) {
	property, err := s.api.GetProperty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching property %s: %w", id, err)
	}
	return property, nil
}

// GetPropertyDetail pide la propiedad y sus reviews en paralelo. Solo
// devuelve resultado si ambas lecturas terminan bien; el primer error
// cancela la otra.
func (s *propertyService) GetPropertyDetail(ctx context.Context, id domain.PropertyID) (*domain.PropertyDetail, error) {
	var (
		property *domain.Property
		reviews  []domain.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.api.GetProperty(gctx, id)
		if err != nil {
			return fmt.Errorf("error fetching property %s: %w", id, err)
		}
		property = p
		return nil
	})
	g.Go(func() error {
		r, err := s.api.GetReviews(gctx, id)
		if err != nil {
			return fmt.Errorf("error fetching reviews for property %s: %w", id, err)
		}
		reviews = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debugf("GetPropertyDetail: property ID=%s loaded with %d reviews", id, len(reviews))
	return &domain.PropertyDetail{Property: *property, Reviews: reviews}, nil
}
