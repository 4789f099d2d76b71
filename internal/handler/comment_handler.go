package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"music-storefront/internal/commenttree"
	"music-storefront/internal/domain"
	"music-storefront/internal/middleware"
	"music-storefront/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	opts, err := treeOptions(c, h.commentService.DefaultOptions())
	if err != nil {
		return err
	}

	tree, err := h.commentService.Tree(c.UserContext(), productID, opts)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tree)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	var input domain.CreateCommentInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	created, err := h.commentService.Create(c.UserContext(), session, productID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	var input domain.UpdateCommentInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := h.commentService.Update(c.UserContext(), session, commentID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *CommentHandler) Vote(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	var input domain.CommentVoteInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	vote, err := h.commentService.Vote(c.UserContext(), session, commentID, input.Value)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"vote": vote})
}

func (h *CommentHandler) Rating(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	rating, err := h.commentService.Rating(c.UserContext(), commentID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rating)
}

// treeOptions overrides the default tree limits with the max_depth and
// max_children query parameters.
func treeOptions(c *fiber.Ctx, defaults commenttree.Options) (commenttree.Options, error) {
	opts := defaults

	if raw := c.Query("max_depth"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return opts, middleware.BadRequest("INVALID_QUERY")
		}
		opts.MaxDepth = value
	}
	if raw := c.Query("max_children"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return opts, middleware.BadRequest("INVALID_QUERY")
		}
		opts.MaxChildrenPerNode = value
	}
	return opts, nil
}
