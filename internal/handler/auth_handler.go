package handler

import (
	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
	"music-storefront/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
	cookie      middleware.SessionCookie
}

func NewAuthHandler(authService auth.Service, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	session, err := h.authService.Register(c.UserContext(), input)
	if err != nil {
		return err
	}

	h.cookie.Set(c, session)
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(session))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	session, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		return err
	}

	h.cookie.Set(c, session)
	return c.Status(fiber.StatusOK).JSON(sessionResponse(session))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.UserContext(), h.cookie.Token(c)); err != nil {
		return err
	}
	h.cookie.Clear(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	refreshed, err := h.authService.Refresh(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(refreshed.User)
}

func sessionResponse(session *domain.Session) domain.SessionResponse {
	return domain.SessionResponse{
		Token:     session.ID,
		User:      session.User,
		ExpiresAt: session.ExpiresAt,
	}
}
