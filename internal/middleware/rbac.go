package middleware

import (
	"github.com/gofiber/fiber/v2"
)

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("UNAUTHORIZED")
		}

		if !user.IsAdmin() {
			return Forbidden("FORBIDDEN")
		}

		return c.Next()
	}
}
