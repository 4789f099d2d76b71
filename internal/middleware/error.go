package middleware

import (
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"music-storefront/internal/domain"
	"music-storefront/internal/pkg/i18n"
	"music-storefront/internal/shopapi"
)

type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	TraceID string            `json:"trace_id,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type errorMapping struct {
	status int
	code   string
	key    string
}

var sentinelErrors = []struct {
	err     error
	mapping errorMapping
}{
	{domain.ErrSessionExpired, errorMapping{fiber.StatusUnauthorized, "UNAUTHORIZED", "SESSION_EXPIRED"}},
	{domain.ErrInvalidCredentials, errorMapping{fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "INVALID_CREDENTIALS"}},
	{domain.ErrEmailTaken, errorMapping{fiber.StatusConflict, "CONFLICT", "EMAIL_TAKEN"}},
	{domain.ErrForbidden, errorMapping{fiber.StatusForbidden, "FORBIDDEN", "FORBIDDEN"}},
	{domain.ErrNotCommentAuthor, errorMapping{fiber.StatusForbidden, "FORBIDDEN", "NOT_COMMENT_AUTHOR"}},
	{domain.ErrPurchaseRequired, errorMapping{fiber.StatusForbidden, "FORBIDDEN", "PURCHASE_REQUIRED"}},
	{domain.ErrEmptyComment, errorMapping{fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "VALIDATION_ERROR"}},
	{domain.ErrInvalidPriceRange, errorMapping{fiber.StatusBadRequest, "BAD_REQUEST", "INVALID_QUERY"}},
	{domain.ErrProductNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "PRODUCT_NOT_FOUND"}},
	{domain.ErrCommentNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "COMMENT_NOT_FOUND"}},
	{domain.ErrBrandNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "BRAND_NOT_FOUND"}},
	{domain.ErrCategoryNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "CATEGORY_NOT_FOUND"}},
	{domain.ErrAvatarNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "NOT_FOUND"}},
	{domain.ErrFavoriteNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "NOT_FOUND"}},
	{domain.ErrOrderNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "NOT_FOUND"}},
	{domain.ErrCartItemNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "CART_ITEM_NOT_FOUND"}},
	{domain.ErrAlreadyFavorite, errorMapping{fiber.StatusConflict, "CONFLICT", "CONFLICT"}},
	{domain.ErrNothingToCheckout, errorMapping{fiber.StatusBadRequest, "BAD_REQUEST", "NOTHING_TO_CHECKOUT"}},
	{domain.ErrOutOfStock, errorMapping{fiber.StatusConflict, "CONFLICT", "OUT_OF_STOCK"}},
}

// NewErrorHandler renders every error as an ErrorResponse with a message in
// the caller's language.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		locale := i18n.FromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		traceID := traceIDFrom(c)

		resp := ErrorResponse{TraceID: traceID}
		status := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		var validationErrs validator.ValidationErrors
		var apiErr *shopapi.APIError

		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			resp.Code = codeForStatus(status)
			resp.Message = i18n.Translate(locale, fiberErr.Message)

		case errors.As(err, &validationErrs):
			status = fiber.StatusUnprocessableEntity
			resp.Code = "VALIDATION_ERROR"
			resp.Message = i18n.Translate(locale, "VALIDATION_ERROR")
			resp.Details = make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				resp.Details[fe.Field()] = fe.Tag()
			}

		case shopapi.IsUpstreamFailure(err):
			status = fiber.StatusBadGateway
			resp.Code = "UPSTREAM_ERROR"
			resp.Message = i18n.Translate(locale, "UPSTREAM_ERROR")
			logger.Error("shop api failure",
				zap.String("trace_id", traceID),
				zap.String("path", c.Path()),
				zap.Error(err),
			)

		case errors.As(err, &apiErr):
			status, resp.Code, resp.Message = fromAPIError(apiErr, locale)

		default:
			if m, ok := lookupSentinel(err); ok {
				status = m.status
				resp.Code = m.code
				resp.Message = i18n.Translate(locale, m.key)
				break
			}
			resp.Code = "INTERNAL_ERROR"
			resp.Message = i18n.Translate(locale, "INTERNAL_ERROR")
			logger.Error("unhandled error",
				zap.String("trace_id", traceID),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(status).JSON(resp)
	}
}

func lookupSentinel(err error) (errorMapping, bool) {
	for _, s := range sentinelErrors {
		if errors.Is(err, s.err) {
			return s.mapping, true
		}
	}
	return errorMapping{}, false
}

// fromAPIError passes a client error of the shop API through. Its detail is
// already a user-facing sentence.
func fromAPIError(apiErr *shopapi.APIError, locale string) (int, string, string) {
	status := apiErr.StatusCode
	switch status {
	case http.StatusUnauthorized:
		return status, "UNAUTHORIZED", i18n.Translate(locale, "SESSION_EXPIRED")
	case http.StatusForbidden:
		return status, "FORBIDDEN", i18n.Translate(locale, "FORBIDDEN")
	}

	code := codeForStatus(status)
	message := apiErr.Detail
	if message == "" {
		message = i18n.Translate(locale, code)
	}
	return status, code, message
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusBadGateway:
		return "UPSTREAM_ERROR"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "BAD_REQUEST"
}

func traceIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDContextKey).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()[:8]
}

func NewError(code int, message string) *fiber.Error {
	return fiber.NewError(code, message)
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
