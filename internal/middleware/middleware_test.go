package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"music-storefront/internal/config"
	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
	"music-storefront/internal/mocks"
	"music-storefront/internal/pkg/i18n"
	"music-storefront/internal/repository"
	"music-storefront/internal/service/auth"
	"music-storefront/internal/shopapi"
)

func decodeError(t *testing.T, res *http.Response) middleware.ErrorResponse {
	t.Helper()
	defer res.Body.Close()
	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestErrorHandler(t *testing.T) {
	require.NoError(t, i18n.Load("ru"))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.NewErrorHandler(zap.NewNop())})
	app.Get("/fiber", func(c *fiber.Ctx) error { return middleware.BadRequest("INVALID_BODY") })
	app.Get("/sentinel", func(c *fiber.Ctx) error {
		return fmt.Errorf("load product: %w", domain.ErrProductNotFound)
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		type input struct {
			Email string `validate:"required,email"`
		}
		return validator.New().Struct(input{Email: "nope"})
	})
	app.Get("/upstream", func(c *fiber.Ctx) error {
		return &shopapi.APIError{StatusCode: http.StatusServiceUnavailable}
	})
	app.Get("/passthrough", func(c *fiber.Ctx) error {
		return &shopapi.APIError{StatusCode: http.StatusBadRequest, Detail: "Товар уже в избранном"}
	})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	cases := []struct {
		path    string
		lang    string
		status  int
		code    string
		message string
	}{
		{"/fiber", "en", http.StatusBadRequest, "BAD_REQUEST", "Invalid request body"},
		{"/sentinel", "ru", http.StatusNotFound, "NOT_FOUND", "Товар не найден"},
		{"/validation", "en", http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Some fields are filled in incorrectly"},
		{"/upstream", "en", http.StatusBadGateway, "UPSTREAM_ERROR", "The shop is temporarily unavailable, please try again later"},
		{"/passthrough", "en", http.StatusBadRequest, "BAD_REQUEST", "Товар уже в избранном"},
		{"/boom", "en-GB", http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Accept-Language", tc.lang)

			res, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tc.status, res.StatusCode)
			body := decodeError(t, res)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
			assert.NotEmpty(t, body.TraceID)
		})
	}
}

func newSessionApp(t *testing.T) (*fiber.App, repository.SessionRepository) {
	t.Helper()
	require.NoError(t, i18n.Load("en"))

	sessions := repository.NewSessionRepository(repository.NewMemoryCache(time.Minute))
	authService := auth.NewService(new(mocks.UserRepository), sessions, &config.Config{SessionTTL: time.Hour}, zap.NewNop())
	cookie := middleware.SessionCookie{Name: "storefront_session"}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.NewErrorHandler(zap.NewNop())})
	protected := app.Group("", middleware.SessionRequired(authService, cookie, zap.NewNop()))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(middleware.GetSession(c).User)
	})
	protected.Get("/rejected", func(c *fiber.Ctx) error {
		return &shopapi.APIError{StatusCode: http.StatusUnauthorized}
	})
	protected.Get("/admin", middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	return app, sessions
}

func TestSessionRequired(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject requests without a token", func(t *testing.T) {
		app, _ := newSessionApp(t)

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Should reject unknown sessions", func(t *testing.T) {
		app, _ := newSessionApp(t)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer missing")
		res, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "Your session has expired, please sign in again", decodeError(t, res).Message)
	})

	t.Run("Should accept the session cookie", func(t *testing.T) {
		app, sessions := newSessionApp(t)
		require.NoError(t, sessions.Create(ctx, &domain.Session{
			ID: "s1", AccessToken: "t", User: domain.User{ID: "7", Name: "Ann"}, ExpiresAt: time.Now().Add(time.Hour),
		}))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "s1"})
		res, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("Should drop the session on a shop API 401", func(t *testing.T) {
		app, sessions := newSessionApp(t)
		require.NoError(t, sessions.Create(ctx, &domain.Session{ID: "s2", AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}))

		req := httptest.NewRequest(http.MethodGet, "/rejected", nil)
		req.Header.Set("Authorization", "Bearer s2")
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

		session, err := sessions.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Should reserve admin routes for admins", func(t *testing.T) {
		app, sessions := newSessionApp(t)
		require.NoError(t, sessions.Create(ctx, &domain.Session{ID: "s3", AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}))

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer s3")
		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})
}
