package handler

import (
	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
	"music-storefront/internal/service/catalog"
	"music-storefront/internal/service/comment"
)

const defaultTopRating = 4.0

type CatalogHandler struct {
	catalogService catalog.Service
	commentService comment.Service
}

func NewCatalogHandler(catalogService catalog.Service, commentService comment.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, commentService: commentService}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	filter := domain.ProductFilter{
		Query:            c.Query("q"),
		PaginationParams: getPaginationParams(c),
	}

	var err error
	if filter.PriceMin, err = queryFloat(c, "price_min"); err != nil {
		return err
	}
	if filter.PriceMax, err = queryFloat(c, "price_max"); err != nil {
		return err
	}
	if filter.BrandID, err = queryID(c, "brand_id"); err != nil {
		return err
	}
	if filter.MusicTypeID, err = queryID(c, "music_type_id"); err != nil {
		return err
	}

	page, err := h.catalogService.ListProducts(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *CatalogHandler) TopProducts(c *fiber.Ctx) error {
	minRating := defaultTopRating
	if value, err := queryFloat(c, "min_rating"); err != nil {
		return err
	} else if value != nil {
		if *value > 5 {
			return middleware.BadRequest("INVALID_QUERY")
		}
		minRating = *value
	}

	page, err := h.catalogService.TopProducts(c.UserContext(), minRating, getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *CatalogHandler) Suggest(c *fiber.Ctx) error {
	products, err := h.catalogService.Suggest(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	opts, err := treeOptions(c, h.commentService.DefaultOptions())
	if err != nil {
		return err
	}

	detail, err := h.catalogService.ProductDetail(c.UserContext(), productID, opts)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

func (h *CatalogHandler) GetRating(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	rating, err := h.catalogService.Rating(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rating)
}

func (h *CatalogHandler) Rate(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	var input domain.RateProductInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	vote, err := h.catalogService.Rate(c.UserContext(), session, productID, input.Value)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(vote)
}

func (h *CatalogHandler) MusicTypes(c *fiber.Ctx) error {
	types, err := h.catalogService.MusicTypes(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(types)
}

func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.catalogService.Brands(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(brands)
}

func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	brandID, err := parseID(c, "brandId")
	if err != nil {
		return err
	}

	page, err := h.catalogService.BrandPage(c.UserContext(), brandID, getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalogService.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

func (h *CatalogHandler) CategoryProducts(c *fiber.Ctx) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}

	page, err := h.catalogService.CategoryPage(c.UserContext(), categoryID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(page)
}
