package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListTop(ctx context.Context, minRating float64, params domain.PaginationParams) ([]domain.Product, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	ListMusicTypes(ctx context.Context) ([]domain.MusicType, error)
	GetRating(ctx context.Context, id domain.ID) (domain.ProductRating, error)
	Rate(ctx context.Context, token string, id domain.ID, value int) (*domain.ProductRatingVote, error)
}

type productRepository struct {
	api *shopapi.Client
}

func NewProductRepository(api *shopapi.Client) ProductRepository {
	return &productRepository{api: api}
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	filter.Validate()

	q := url.Values{}
	q.Set("skip", strconv.Itoa(filter.Offset()))
	q.Set("limit", strconv.Itoa(filter.PageSize))
	if filter.Query != "" {
		q.Set("q", filter.Query)
	}
	if filter.PriceMin != nil {
		q.Set("price_min", strconv.FormatFloat(*filter.PriceMin, 'f', -1, 64))
	}
	if filter.PriceMax != nil {
		q.Set("price_max", strconv.FormatFloat(*filter.PriceMax, 'f', -1, 64))
	}
	if !filter.BrandID.IsZero() {
		q.Set("brand_id", filter.BrandID.String())
	}
	if !filter.MusicTypeID.IsZero() {
		q.Set("music_type_id", filter.MusicTypeID.String())
	}

	var products shopapi.List[domain.Product]
	if err := r.api.Get(ctx, "products/", q, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListTop(ctx context.Context, minRating float64, params domain.PaginationParams) ([]domain.Product, error) {
	params.Validate()

	q := url.Values{}
	q.Set("min_rating", strconv.FormatFloat(minRating, 'f', -1, 64))
	q.Set("skip", strconv.Itoa(params.Offset()))
	q.Set("limit", strconv.Itoa(params.PageSize))

	var products shopapi.List[domain.Product]
	if err := r.api.Get(ctx, "products/top", q, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	var product domain.Product
	if err := r.api.Get(ctx, fmt.Sprintf("products/%s", id), nil, "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListMusicTypes(ctx context.Context) ([]domain.MusicType, error) {
	var types shopapi.List[domain.MusicType]
	if err := r.api.Get(ctx, "products/music_types", nil, "", &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *productRepository) GetRating(ctx context.Context, id domain.ID) (domain.ProductRating, error) {
	var rating domain.ProductRating
	err := r.api.Get(ctx, fmt.Sprintf("products/%s/rating", id), nil, "", &rating)
	return rating, err
}

func (r *productRepository) Rate(ctx context.Context, token string, id domain.ID, value int) (*domain.ProductRatingVote, error) {
	body := map[string]any{"product_id": id, "value": value}

	var vote domain.ProductRatingVote
	if err := r.api.Post(ctx, fmt.Sprintf("products/%s/rating", id), body, token, &vote); err != nil {
		return nil, err
	}
	return &vote, nil
}
