package repository

import (
	"context"
	"fmt"
	"net/url"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type FavoriteRepository interface {
	List(ctx context.Context, token string) ([]domain.Favorite, error)
	Add(ctx context.Context, token string, productID domain.ID) (*domain.FavoriteCreated, error)
	Remove(ctx context.Context, token string, favoriteID domain.ID) error
	Check(ctx context.Context, token string, productID domain.ID) (domain.FavoriteStatus, error)
}

type favoriteRepository struct {
	api *shopapi.Client
}

func NewFavoriteRepository(api *shopapi.Client) FavoriteRepository {
	return &favoriteRepository{api: api}
}

func (r *favoriteRepository) List(ctx context.Context, token string) ([]domain.Favorite, error) {
	var favorites shopapi.List[domain.Favorite]
	if err := r.api.Get(ctx, "favorites/", nil, token, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Add(ctx context.Context, token string, productID domain.ID) (*domain.FavoriteCreated, error) {
	var created domain.FavoriteCreated
	body := map[string]domain.ID{"product_id": productID}
	if err := r.api.Post(ctx, "favorites/", body, token, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, token string, favoriteID domain.ID) error {
	return r.api.Delete(ctx, fmt.Sprintf("favorites/%s", favoriteID), token, nil)
}

func (r *favoriteRepository) Check(ctx context.Context, token string, productID domain.ID) (domain.FavoriteStatus, error) {
	q := url.Values{}
	q.Set("product_id", productID.String())

	var status domain.FavoriteStatus
	err := r.api.Get(ctx, "favorites/check", q, token, &status)
	return status, err
}
