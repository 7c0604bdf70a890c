package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/team13/tutorfind/models"
)

// CatalogService exposes the public city/district/subject reads.
type CatalogService struct {
	store Store
}

func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListCities(ctx context.Context) ([]models.City, error) {
	return s.store.Catalog().ListCities(ctx)
}

func (s *CatalogService) ListDistricts(ctx context.Context, cityID uuid.UUID) ([]models.District, error) {
	if _, err := s.store.Catalog().GetCity(ctx, cityID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, notFound("city")
		}
		return nil, err
	}
	return s.store.Catalog().ListDistrictsByCity(ctx, cityID)
}

func (s *CatalogService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.store.Catalog().ListSubjects(ctx)
}
