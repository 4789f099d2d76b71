package cart

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

type Service interface {
	Get(ctx context.Context, session *domain.Session) (domain.Cart, error)
	AddItem(ctx context.Context, session *domain.Session, input domain.AddCartItemInput) (*domain.OrderItem, error)
	UpdateItem(ctx context.Context, session *domain.Session, itemID domain.ID, quantity int) error
	RemoveItem(ctx context.Context, session *domain.Session, itemID domain.ID) error
	Checkout(ctx context.Context, session *domain.Session, itemIDs []domain.ID) (*domain.CheckoutResult, error)
	History(ctx context.Context, session *domain.Session) ([]domain.Order, error)
	Barcode(ctx context.Context, session *domain.Session) (*domain.OrderBarcode, error)
}

type service struct {
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

func NewService(orderRepo repository.OrderRepository, logger *zap.Logger) Service {
	return &service{
		orderRepo: orderRepo,
		logger:    logger.Named("cart"),
	}
}

func (s *service) Get(ctx context.Context, session *domain.Session) (domain.Cart, error) {
	order, err := s.orderRepo.GetCart(ctx, session.AccessToken)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.NewCart(order), nil
}

func (s *service) AddItem(ctx context.Context, session *domain.Session, input domain.AddCartItemInput) (*domain.OrderItem, error) {
	item, err := s.orderRepo.AddItem(ctx, session.AccessToken, input)
	if err != nil {
		return nil, mapCartError(err, domain.ErrProductNotFound)
	}
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, session *domain.Session, itemID domain.ID, quantity int) error {
	err := s.orderRepo.UpdateItem(ctx, session.AccessToken, itemID, quantity)
	return mapCartError(err, domain.ErrCartItemNotFound)
}

func (s *service) RemoveItem(ctx context.Context, session *domain.Session, itemID domain.ID) error {
	err := s.orderRepo.RemoveItem(ctx, session.AccessToken, itemID)
	return mapCartError(err, domain.ErrCartItemNotFound)
}

// Checkout buys the selected cart items. Duplicate ids are sent once.
func (s *service) Checkout(ctx context.Context, session *domain.Session, itemIDs []domain.ID) (*domain.CheckoutResult, error) {
	unique := make([]domain.ID, 0, len(itemIDs))
	seen := make(map[domain.ID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, domain.ErrNothingToCheckout
	}

	result, err := s.orderRepo.Checkout(ctx, session.AccessToken, unique)
	if err != nil {
		return nil, mapCartError(err, domain.ErrProductNotFound)
	}

	s.logger.Info("order placed",
		zap.String("user_id", session.User.ID.String()),
		zap.String("order_id", result.NewOrderID.String()),
		zap.Int("items", len(unique)),
	)
	return result, nil
}

func (s *service) History(ctx context.Context, session *domain.Session) ([]domain.Order, error) {
	orders, err := s.orderRepo.History(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *service) Barcode(ctx context.Context, session *domain.Session) (*domain.OrderBarcode, error) {
	barcode, err := s.orderRepo.Barcode(ctx, session.AccessToken)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrOrderNotFound})
	}
	return barcode, nil
}

// mapCartError turns the shop API's 404 into notFound and recognises its
// stock and empty-selection 400 answers by their detail text.
func mapCartError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	var apiErr *shopapi.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return notFound
	case http.StatusBadRequest:
		detail := strings.ToLower(apiErr.Detail)
		switch {
		case strings.Contains(detail, "недостаточно"), strings.Contains(detail, "not enough"):
			return domain.ErrOutOfStock
		case strings.Contains(detail, "корзина пуста"), strings.Contains(detail, "не выбраны"):
			return domain.ErrNothingToCheckout
		}
	}
	return err
}
