package handler

import (
	"strconv"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
)

var validate = validator.New()

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", params.PageSize); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}

func parseID(c *fiber.Ctx, param string) (domain.ID, error) {
	id, err := domain.ParseID(c.Params(param))
	if err != nil {
		return "", middleware.BadRequest("INVALID_ID")
	}
	return id, nil
}

// parseBody decodes the JSON body into input and validates its tags.
func parseBody(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return middleware.BadRequest("INVALID_BODY")
	}
	return validate.Struct(input)
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil, middleware.BadRequest("INVALID_QUERY")
	}
	return &value, nil
}

func queryID(c *fiber.Ctx, key string) (domain.ID, error) {
	raw := c.Query(key)
	if raw == "" {
		return "", nil
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		return "", middleware.BadRequest("INVALID_QUERY")
	}
	return id, nil
}

// currentSession is only called behind SessionRequired.
func currentSession(c *fiber.Ctx) (*domain.Session, error) {
	session := middleware.GetSession(c)
	if session == nil {
		return nil, middleware.Unauthorized("UNAUTHORIZED")
	}
	return session, nil
}
