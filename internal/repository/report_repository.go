package repository

import (
	"context"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type ReportRepository interface {
	Sales(ctx context.Context, token string) (*domain.SalesReport, error)
}

type reportRepository struct {
	api *shopapi.Client
}

func NewReportRepository(api *shopapi.Client) ReportRepository {
	return &reportRepository{api: api}
}

func (r *reportRepository) Sales(ctx context.Context, token string) (*domain.SalesReport, error) {
	var report domain.SalesReport
	if err := r.api.Get(ctx, "sold/total", nil, token, &report); err != nil {
		return nil, err
	}
	if report.Products == nil {
		report.Products = []domain.ProductSalesEntry{}
	}
	return &report, nil
}
