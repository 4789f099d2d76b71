package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"music-storefront/internal/domain"
	"music-storefront/internal/service/auth"
	"music-storefront/internal/shopapi"
)

const SessionContextKey = "session"

type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) Set(c *fiber.Ctx, session *domain.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     sc.Name,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   sc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (sc SessionCookie) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   sc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Token reads the session token from the cookie, then from a Bearer header.
func (sc SessionCookie) Token(c *fiber.Ctx) string {
	if token := c.Cookies(sc.Name); token != "" {
		return token
	}

	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionRequired rejects requests without a live session. When the shop API
// answers 401 for the session's token the session is dropped.
func SessionRequired(authService auth.Service, cookie SessionCookie, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := cookie.Token(c)
		if token == "" {
			return Unauthorized("UNAUTHORIZED")
		}

		session, err := authService.Resolve(c.UserContext(), token)
		if err != nil {
			return err
		}
		if session == nil {
			cookie.Clear(c)
			return Unauthorized("SESSION_EXPIRED")
		}

		c.Locals(SessionContextKey, session)

		err = c.Next()
		if shopapi.IsUnauthorized(err) {
			if logoutErr := authService.Logout(c.UserContext(), session.ID); logoutErr != nil {
				logger.Warn("failed to drop rejected session", zap.Error(logoutErr))
			}
			cookie.Clear(c)
			return Unauthorized("SESSION_EXPIRED")
		}
		return err
	}
}

func GetSession(c *fiber.Ctx) *domain.Session {
	session, ok := c.Locals(SessionContextKey).(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	session := GetSession(c)
	if session == nil {
		return nil
	}
	return &session.User
}
