package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) List(ctx context.Context, token string) ([]domain.Favorite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *FavoriteRepository) Add(ctx context.Context, token string, productID domain.ID) (*domain.FavoriteCreated, error) {
	args := m.Called(ctx, token, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteCreated), args.Error(1)
}

func (m *FavoriteRepository) Remove(ctx context.Context, token string, favoriteID domain.ID) error {
	args := m.Called(ctx, token, favoriteID)
	return args.Error(0)
}

func (m *FavoriteRepository) Check(ctx context.Context, token string, productID domain.ID) (domain.FavoriteStatus, error) {
	args := m.Called(ctx, token, productID)
	return args.Get(0).(domain.FavoriteStatus), args.Error(1)
}
