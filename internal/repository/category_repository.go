package repository

import (
	"context"
	"fmt"
	"net/url"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

// The shop API only exposes categories under its admin prefix; the read
// endpoints used here are public.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Category, error)
	ListProducts(ctx context.Context, id domain.ID) ([]domain.Product, error)
}

type categoryRepository struct {
	api *shopapi.Client
}

func NewCategoryRepository(api *shopapi.Client) CategoryRepository {
	return &categoryRepository{api: api}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	q := url.Values{}
	q.Set("limit", "100")

	var categories shopapi.List[domain.Category]
	if err := r.api.Get(ctx, "admin/categories", q, "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	var category domain.Category
	if err := r.api.Get(ctx, fmt.Sprintf("admin/categories/%s", id), nil, "", &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListProducts(ctx context.Context, id domain.ID) ([]domain.Product, error) {
	var res struct {
		Products []domain.Product `json:"products"`
	}
	if err := r.api.Get(ctx, fmt.Sprintf("admin/categories/%s/products", id), nil, "", &res); err != nil {
		return nil, err
	}
	if res.Products == nil {
		res.Products = []domain.Product{}
	}
	return res.Products, nil
}
