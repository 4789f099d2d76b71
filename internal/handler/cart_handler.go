package handler

import (
	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/domain"
	"music-storefront/internal/service/cart"
)

type CartHandler struct {
	cartService cart.Service
}

func NewCartHandler(cartService cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	result, err := h.cartService.Get(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input domain.AddCartItemInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	item, err := h.cartService.AddItem(c.UserContext(), session, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "itemId")
	if err != nil {
		return err
	}

	var input domain.UpdateCartItemInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	if err := h.cartService.UpdateItem(c.UserContext(), session, itemID, input.Quantity); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "itemId")
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(c.UserContext(), session, itemID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input domain.CheckoutInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	result, err := h.cartService.Checkout(c.UserContext(), session, input.ItemIDs)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CartHandler) History(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	orders, err := h.cartService.History(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *CartHandler) Barcode(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	barcode, err := h.cartService.Barcode(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(barcode)
}
