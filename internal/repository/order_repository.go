package repository

import (
	"context"
	"fmt"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type OrderRepository interface {
	// GetCart returns nil, nil when the user has no open order yet.
	GetCart(ctx context.Context, token string) (*domain.Order, error)
	AddItem(ctx context.Context, token string, input domain.AddCartItemInput) (*domain.OrderItem, error)
	UpdateItem(ctx context.Context, token string, itemID domain.ID, quantity int) error
	RemoveItem(ctx context.Context, token string, itemID domain.ID) error
	Checkout(ctx context.Context, token string, itemIDs []domain.ID) (*domain.CheckoutResult, error)
	History(ctx context.Context, token string) ([]domain.Order, error)
	Barcode(ctx context.Context, token string) (*domain.OrderBarcode, error)
}

type orderRepository struct {
	api *shopapi.Client
}

func NewOrderRepository(api *shopapi.Client) OrderRepository {
	return &orderRepository{api: api}
}

func (r *orderRepository) GetCart(ctx context.Context, token string) (*domain.Order, error) {
	var order domain.Order
	err := r.api.Get(ctx, "order/me", nil, token, &order)
	if shopapi.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) AddItem(ctx context.Context, token string, input domain.AddCartItemInput) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := r.api.Post(ctx, "order/items", input, token, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderRepository) UpdateItem(ctx context.Context, token string, itemID domain.ID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return r.api.Patch(ctx, fmt.Sprintf("order/items/%s", itemID), body, token, nil)
}

func (r *orderRepository) RemoveItem(ctx context.Context, token string, itemID domain.ID) error {
	return r.api.Delete(ctx, fmt.Sprintf("order/items/%s", itemID), token, nil)
}

func (r *orderRepository) Checkout(ctx context.Context, token string, itemIDs []domain.ID) (*domain.CheckoutResult, error) {
	body := map[string][]domain.ID{"items_ids": itemIDs}

	var result domain.CheckoutResult
	if err := r.api.Post(ctx, "order/me/checkout", body, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *orderRepository) History(ctx context.Context, token string) ([]domain.Order, error) {
	var orders shopapi.List[domain.Order]
	if err := r.api.Get(ctx, "order/me/history", nil, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Barcode(ctx context.Context, token string) (*domain.OrderBarcode, error) {
	var barcode domain.OrderBarcode
	if err := r.api.Get(ctx, "order/me/barcode", nil, token, &barcode); err != nil {
		return nil, err
	}
	return &barcode, nil
}
