package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
	"music-storefront/internal/service/profile"
)

const maxAvatarSize = 5 << 20

type ProfileHandler struct {
	profileService profile.Service
	cookie         middleware.SessionCookie
}

func NewProfileHandler(profileService profile.Service, cookie middleware.SessionCookie) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, cookie: cookie}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.Get(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input domain.UpdateProfileInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := h.profileService.Update(c.UserContext(), session, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated.User)
}

func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.profileService.Delete(c.UserContext(), session); err != nil {
		return err
	}
	h.cookie.Clear(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("INVALID_BODY")
	}
	if header.Size > maxAvatarSize {
		return middleware.NewError(fiber.StatusRequestEntityTooLarge, "INVALID_BODY")
	}
	if !strings.HasPrefix(header.Header.Get(fiber.HeaderContentType), "image/") {
		return middleware.BadRequest("INVALID_BODY")
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	if err := h.profileService.UploadAvatar(c.UserContext(), session, filepath.Base(header.Filename), file); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) Avatar(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	blob, err := h.profileService.Avatar(c.UserContext(), userID)
	if err != nil {
		return err
	}

	contentType := blob.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Status(fiber.StatusOK).Send(blob.Data)
}
