package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *CategoryRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CategoryRepository) ListProducts(ctx context.Context, id domain.ID) ([]domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
