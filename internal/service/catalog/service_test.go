package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"music-storefront/internal/commenttree"
	"music-storefront/internal/domain"
	"music-storefront/internal/mocks"
	"music-storefront/internal/repository"
	"music-storefront/internal/service/catalog"
	"music-storefront/internal/service/comment"
	"music-storefront/internal/shopapi"
)

type fixture struct {
	svc        catalog.Service
	products   *mocks.ProductRepository
	brands     *mocks.BrandRepository
	categories *mocks.CategoryRepository
	comments   *mocks.CommentRepository
}

func newFixture() fixture {
	f := fixture{
		products:   new(mocks.ProductRepository),
		brands:     new(mocks.BrandRepository),
		categories: new(mocks.CategoryRepository),
		comments:   new(mocks.CommentRepository),
	}
	commentSvc := comment.NewService(f.comments, f.products, commenttree.DefaultOptions(), zap.NewNop())
	f.svc = catalog.NewService(f.products, f.brands, f.categories, commentSvc, repository.NewMemoryCache(time.Minute), zap.NewNop())
	return f
}

func TestCatalogService_ProductDetail(t *testing.T) {
	t.Run("Should combine product, rating and comment tree", func(t *testing.T) {
		f := newFixture()
		parent := domain.ID("1")
		f.products.On("GetByID", mock.Anything, domain.ID("5")).Return(&domain.Product{ID: "5", Title: "Les Paul"}, nil).Once()
		f.products.On("GetRating", mock.Anything, domain.ID("5")).Return(domain.ProductRating{Average: 4.5}, nil).Once()
		f.comments.On("ListByProduct", mock.Anything, domain.ID("5")).Return([]domain.Comment{
			{ID: "1", Content: "root"},
			{ID: "2", ParentID: &parent, Content: "reply"},
		}, nil).Once()

		detail, err := f.svc.ProductDetail(context.Background(), "5", commenttree.DefaultOptions())

		require.NoError(t, err)
		assert.Equal(t, "Les Paul", detail.Product.Title)
		assert.Equal(t, 4.5, detail.Rating.Average)
		require.Len(t, detail.Comments, 1)
		assert.Len(t, detail.Comments[0].Children, 1)
	})

	t.Run("Should fail when any fetch fails", func(t *testing.T) {
		f := newFixture()
		f.products.On("GetByID", mock.Anything, domain.ID("9")).Return(nil, &shopapi.APIError{StatusCode: http.StatusNotFound}).Once()
		f.products.On("GetRating", mock.Anything, domain.ID("9")).Return(domain.ProductRating{}, nil).Maybe()
		f.comments.On("ListByProduct", mock.Anything, domain.ID("9")).Return([]domain.Comment{}, nil).Maybe()

		_, err := f.svc.ProductDetail(context.Background(), "9", commenttree.DefaultOptions())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an inverted price range", func(t *testing.T) {
		f := newFixture()
		minPrice, maxPrice := 500.0, 100.0

		_, err := f.svc.ListProducts(ctx, domain.ProductFilter{PriceMin: &minPrice, PriceMax: &maxPrice})
		assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
	})

	t.Run("Should apply default paging", func(t *testing.T) {
		f := newFixture()
		f.products.On("List", ctx, mock.MatchedBy(func(filter domain.ProductFilter) bool {
			return filter.Page == 1 && filter.PageSize == 30 && filter.Query == "drum"
		})).Return([]domain.Product{{ID: "1"}}, nil).Once()

		page, err := f.svc.ListProducts(ctx, domain.ProductFilter{Query: " drum "})

		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrev)
	})
}

func TestCatalogService_Suggest(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	suggestions, err := f.svc.Suggest(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	f.products.On("List", ctx, mock.MatchedBy(func(filter domain.ProductFilter) bool {
		return filter.PageSize == 5 && filter.Query == "gui"
	})).Return([]domain.Product{{ID: "1"}, {ID: "2"}}, nil).Once()

	suggestions, err = f.svc.Suggest(ctx, "gui")
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestCatalogService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("Should cache music types", func(t *testing.T) {
		f := newFixture()
		f.products.On("ListMusicTypes", ctx).Return([]domain.MusicType{{ID: "1", Name: "Guitars"}}, nil).Once()

		first, err := f.svc.MusicTypes(ctx)
		require.NoError(t, err)
		second, err := f.svc.MusicTypes(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		f.products.AssertNumberOfCalls(t, "ListMusicTypes", 1)
	})

	t.Run("Should not cache failures", func(t *testing.T) {
		f := newFixture()
		f.brands.On("List", ctx).Return(nil, errors.New("down")).Once()
		f.brands.On("List", ctx).Return([]domain.Brand{{ID: "2", Name: "Yamaha"}}, nil).Once()

		_, err := f.svc.Brands(ctx)
		assert.Error(t, err)

		brands, err := f.svc.Brands(ctx)
		require.NoError(t, err)
		assert.Len(t, brands, 1)
	})
}

func TestCatalogService_Pages(t *testing.T) {
	ctx := context.Background()

	t.Run("Should load a brand with its products", func(t *testing.T) {
		f := newFixture()
		f.brands.On("GetByID", mock.Anything, domain.ID("2")).Return(&domain.Brand{ID: "2", Name: "Yamaha"}, nil).Once()
		f.products.On("List", mock.Anything, mock.MatchedBy(func(filter domain.ProductFilter) bool {
			return filter.BrandID == "2"
		})).Return(nil, nil).Once()

		page, err := f.svc.BrandPage(ctx, "2", domain.DefaultPagination())

		require.NoError(t, err)
		assert.Equal(t, "Yamaha", page.Brand.Name)
		assert.NotNil(t, page.Products)
	})

	t.Run("Should map a missing category", func(t *testing.T) {
		f := newFixture()
		f.categories.On("GetByID", mock.Anything, domain.ID("8")).Return(nil, &shopapi.APIError{StatusCode: http.StatusNotFound}).Once()
		f.categories.On("ListProducts", mock.Anything, domain.ID("8")).Return([]domain.Product{}, nil).Maybe()

		_, err := f.svc.CategoryPage(ctx, "8")
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}
