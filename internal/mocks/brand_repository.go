package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type BrandRepository struct {
	mock.Mock
}

func (m *BrandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *BrandRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}
