package handler

import (
	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
	"music-storefront/internal/service/favorite"
)

type FavoriteHandler struct {
	favoriteService favorite.Service
}

func NewFavoriteHandler(favoriteService favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.List(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(favorites)
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input domain.AddFavoriteInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	created, err := h.favoriteService.Add(c.UserContext(), session, input.ProductID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	favoriteID, err := parseID(c, "favoriteId")
	if err != nil {
		return err
	}

	if err := h.favoriteService.Remove(c.UserContext(), session, favoriteID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FavoriteHandler) Check(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	productID, err := queryID(c, "product_id")
	if err != nil {
		return err
	}
	if productID.IsZero() {
		return middleware.BadRequest("INVALID_QUERY")
	}

	status, err := h.favoriteService.Check(c.UserContext(), session, productID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(status)
}
