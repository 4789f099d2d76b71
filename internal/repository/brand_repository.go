package repository

import (
	"context"
	"fmt"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error)
}

type brandRepository struct {
	api *shopapi.Client
}

func NewBrandRepository(api *shopapi.Client) BrandRepository {
	return &brandRepository{api: api}
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	var brands shopapi.List[domain.Brand]
	if err := r.api.Get(ctx, "brand", nil, "", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.api.Get(ctx, fmt.Sprintf("brand/%s", id), nil, "", &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}
