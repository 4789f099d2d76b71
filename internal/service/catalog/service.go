package catalog

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"music-storefront/internal/commenttree"
	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/service/comment"
	"music-storefront/internal/shopapi"
)

const (
	lookupTTL      = 5 * time.Minute
	suggestionSize = 5

	musicTypesKey = "catalog:music_types"
	brandsKey     = "catalog:brands"
	categoriesKey = "catalog:categories"
)

type Service interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.Page[domain.Product], error)
	TopProducts(ctx context.Context, minRating float64, params domain.PaginationParams) (domain.Page[domain.Product], error)
	Suggest(ctx context.Context, query string) ([]domain.Product, error)
	ProductDetail(ctx context.Context, productID domain.ID, opts commenttree.Options) (*domain.ProductDetail, error)
	Rating(ctx context.Context, productID domain.ID) (domain.ProductRating, error)
	Rate(ctx context.Context, session *domain.Session, productID domain.ID, value int) (*domain.ProductRatingVote, error)
	MusicTypes(ctx context.Context) ([]domain.MusicType, error)
	Brands(ctx context.Context) ([]domain.Brand, error)
	BrandPage(ctx context.Context, brandID domain.ID, params domain.PaginationParams) (*domain.BrandPage, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryPage(ctx context.Context, categoryID domain.ID) (*domain.CategoryPage, error)
}

type service struct {
	productRepo  repository.ProductRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	comments     comment.Service
	cache        repository.Cache
	logger       *zap.Logger
}

func NewService(
	productRepo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	comments comment.Service,
	cache repository.Cache,
	logger *zap.Logger,
) Service {
	return &service{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		comments:     comments,
		cache:        cache,
		logger:       logger.Named("catalog"),
	}
}

func (s *service) ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.Page[domain.Product], error) {
	filter.Validate()
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return domain.Page[domain.Product]{}, domain.ErrInvalidPriceRange
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	return domain.NewPage(products, filter.PaginationParams), nil
}

func (s *service) TopProducts(ctx context.Context, minRating float64, params domain.PaginationParams) (domain.Page[domain.Product], error) {
	params.Validate()

	products, err := s.productRepo.ListTop(ctx, minRating, params)
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	return domain.NewPage(products, params), nil
}

// Suggest returns the first few products matching the search bar input.
func (s *service) Suggest(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}

	filter := domain.ProductFilter{
		Query:            query,
		PaginationParams: domain.PaginationParams{Page: 1, PageSize: suggestionSize},
	}
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(products) > suggestionSize {
		products = products[:suggestionSize]
	}
	return products, nil
}

// ProductDetail loads the product, its average rating and its comment tree
// concurrently. The first failure cancels the other calls.
func (s *service) ProductDetail(ctx context.Context, productID domain.ID, opts commenttree.Options) (*domain.ProductDetail, error) {
	var (
		product *domain.Product
		rating  domain.ProductRating
		tree    *domain.CommentTree
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = s.productRepo.GetByID(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		rating, err = s.productRepo.GetRating(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		tree, err = s.comments.Tree(gctx, productID, opts)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrProductNotFound})
	}

	return &domain.ProductDetail{
		Product:  product,
		Rating:   rating,
		Comments: tree.Comments,
	}, nil
}

func (s *service) Rating(ctx context.Context, productID domain.ID) (domain.ProductRating, error) {
	rating, err := s.productRepo.GetRating(ctx, productID)
	if err != nil {
		return rating, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrProductNotFound})
	}
	return rating, nil
}

func (s *service) Rate(ctx context.Context, session *domain.Session, productID domain.ID, value int) (*domain.ProductRatingVote, error) {
	vote, err := s.productRepo.Rate(ctx, session.AccessToken, productID, value)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{
			http.StatusNotFound:  domain.ErrProductNotFound,
			http.StatusForbidden: domain.ErrPurchaseRequired,
		})
	}
	return vote, nil
}

func (s *service) MusicTypes(ctx context.Context) ([]domain.MusicType, error) {
	return cached(ctx, s, musicTypesKey, s.productRepo.ListMusicTypes)
}

func (s *service) Brands(ctx context.Context) ([]domain.Brand, error) {
	return cached(ctx, s, brandsKey, s.brandRepo.List)
}

func (s *service) Categories(ctx context.Context) ([]domain.Category, error) {
	return cached(ctx, s, categoriesKey, s.categoryRepo.List)
}

func (s *service) BrandPage(ctx context.Context, brandID domain.ID, params domain.PaginationParams) (*domain.BrandPage, error) {
	params.Validate()

	page := &domain.BrandPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		brand, err := s.brandRepo.GetByID(gctx, brandID)
		page.Brand = brand
		return err
	})
	g.Go(func() error {
		products, err := s.productRepo.List(gctx, domain.ProductFilter{BrandID: brandID, PaginationParams: params})
		page.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrBrandNotFound})
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return page, nil
}

func (s *service) CategoryPage(ctx context.Context, categoryID domain.ID) (*domain.CategoryPage, error) {
	page := &domain.CategoryPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		category, err := s.categoryRepo.GetByID(gctx, categoryID)
		page.Category = category
		return err
	})
	g.Go(func() error {
		products, err := s.categoryRepo.ListProducts(gctx, categoryID)
		page.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrCategoryNotFound})
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return page, nil
}

// cached serves a rarely changing lookup list from the cache, loading it on a
// miss. Cache failures only cost a shop API call.
func cached[T any](ctx context.Context, s *service, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	if found, err := s.cache.Get(ctx, key, &items); err == nil && found {
		return items, nil
	} else if err != nil {
		s.logger.Warn("lookup cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	if err := s.cache.Set(ctx, key, items, lookupTTL); err != nil {
		s.logger.Warn("lookup cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}
