package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) Sales(ctx context.Context, token string) (*domain.SalesReport, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}
