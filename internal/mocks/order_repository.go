package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) GetCart(ctx context.Context, token string) (*domain.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) AddItem(ctx context.Context, token string, input domain.AddCartItemInput) (*domain.OrderItem, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *OrderRepository) UpdateItem(ctx context.Context, token string, itemID domain.ID, quantity int) error {
	args := m.Called(ctx, token, itemID, quantity)
	return args.Error(0)
}

func (m *OrderRepository) RemoveItem(ctx context.Context, token string, itemID domain.ID) error {
	args := m.Called(ctx, token, itemID)
	return args.Error(0)
}

func (m *OrderRepository) Checkout(ctx context.Context, token string, itemIDs []domain.ID) (*domain.CheckoutResult, error) {
	args := m.Called(ctx, token, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutResult), args.Error(1)
}

func (m *OrderRepository) History(ctx context.Context, token string) ([]domain.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) Barcode(ctx context.Context, token string) (*domain.OrderBarcode, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderBarcode), args.Error(1)
}
