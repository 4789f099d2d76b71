package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) ListTop(ctx context.Context, minRating float64, params domain.PaginationParams) ([]domain.Product, error) {
	args := m.Called(ctx, minRating, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *ProductRepository) ListMusicTypes(ctx context.Context) ([]domain.MusicType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MusicType), args.Error(1)
}

func (m *ProductRepository) GetRating(ctx context.Context, id domain.ID) (domain.ProductRating, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ProductRating), args.Error(1)
}

func (m *ProductRepository) Rate(ctx context.Context, token string, id domain.ID, value int) (*domain.ProductRatingVote, error) {
	args := m.Called(ctx, token, id, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductRatingVote), args.Error(1)
}
