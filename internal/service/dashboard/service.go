package dashboard

import (
	"context"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

const (
	salesCacheKey = "dashboard:sales"
	salesCacheTTL = time.Minute
)

// Stats is the sales report with the best sellers first.
type Stats struct {
	TotalSold    int                        `json:"total_sold"`
	ProductsSold int                        `json:"products_sold"`
	TopProduct   *domain.ProductSalesEntry  `json:"top_product"`
	Products     []domain.ProductSalesEntry `json:"products"`
	GeneratedAt  time.Time                  `json:"generated_at"`
}

type Service interface {
	GetStats(ctx context.Context, session *domain.Session) (*Stats, error)
}

type service struct {
	reportRepo repository.ReportRepository
	cache      repository.Cache
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(reportRepo repository.ReportRepository, cache repository.Cache, logger *zap.Logger) Service {
	return &service{
		reportRepo: reportRepo,
		cache:      cache,
		logger:     logger.Named("dashboard"),
		now:        time.Now,
	}
}

func (s *service) GetStats(ctx context.Context, session *domain.Session) (*Stats, error) {
	if !session.User.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	var stats Stats
	if found, err := s.cache.Get(ctx, salesCacheKey, &stats); err == nil && found {
		return &stats, nil
	}

	report, err := s.reportRepo.Sales(ctx, session.AccessToken)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusForbidden: domain.ErrForbidden})
	}

	products := append([]domain.ProductSalesEntry(nil), report.Products...)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].SoldCount > products[j].SoldCount
	})

	stats = Stats{
		TotalSold:    report.TotalSold,
		ProductsSold: len(products),
		Products:     products,
		GeneratedAt:  s.now().UTC(),
	}
	if len(products) > 0 && products[0].SoldCount > 0 {
		top := products[0]
		stats.TopProduct = &top
	}
	if stats.Products == nil {
		stats.Products = []domain.ProductSalesEntry{}
	}

	if err := s.cache.Set(ctx, salesCacheKey, stats, salesCacheTTL); err != nil {
		s.logger.Warn("failed to cache sales stats", zap.Error(err))
	}
	return &stats, nil
}
