package repository

import (
	"context"
	"fmt"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type CommentRepository interface {
	ListByProduct(ctx context.Context, productID domain.ID) ([]domain.Comment, error)
	Create(ctx context.Context, token string, comment *domain.Comment) error
	Update(ctx context.Context, token string, comment *domain.Comment) error
	Vote(ctx context.Context, token string, commentID domain.ID, value int) (*domain.CommentVote, error)
	GetRating(ctx context.Context, commentID domain.ID) (domain.CommentRating, error)
}

type commentRepository struct {
	api *shopapi.Client
}

func NewCommentRepository(api *shopapi.Client) CommentRepository {
	return &commentRepository{api: api}
}

type commentBody struct {
	ProductID domain.ID  `json:"product_id"`
	UserID    domain.ID  `json:"user_id"`
	Content   string     `json:"content"`
	ParentID  *domain.ID `json:"parent_id,omitempty"`
}

func (r *commentRepository) ListByProduct(ctx context.Context, productID domain.ID) ([]domain.Comment, error) {
	var comments shopapi.List[domain.Comment]
	if err := r.api.Get(ctx, fmt.Sprintf("products/%s/comments", productID), nil, "", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create posts a top-level comment, or a reply when ParentID is set. The shop
// API stores replies only through its dedicated reply endpoint.
func (r *commentRepository) Create(ctx context.Context, token string, comment *domain.Comment) error {
	endpoint := fmt.Sprintf("products/%s/comments", comment.ProductID)
	if comment.ParentID != nil {
		endpoint += "/reply"
	}

	body := commentBody{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		ParentID:  comment.ParentID,
	}
	return r.api.Post(ctx, endpoint, body, token, comment)
}

func (r *commentRepository) Update(ctx context.Context, token string, comment *domain.Comment) error {
	body := commentBody{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		Content:   comment.Content,
	}
	return r.api.Patch(ctx, fmt.Sprintf("products/comments/%s", comment.ID), body, token, comment)
}

// Vote returns nil when the vote toggled off.
func (r *commentRepository) Vote(ctx context.Context, token string, commentID domain.ID, value int) (*domain.CommentVote, error) {
	var vote *domain.CommentVote
	body := map[string]int{"value": value}
	if err := r.api.Post(ctx, fmt.Sprintf("products/comments/%s/rating", commentID), body, token, &vote); err != nil {
		return nil, err
	}
	return vote, nil
}

func (r *commentRepository) GetRating(ctx context.Context, commentID domain.ID) (domain.CommentRating, error) {
	var rating domain.CommentRating
	err := r.api.Get(ctx, fmt.Sprintf("products/comments/%s/rating", commentID), nil, "", &rating)
	return rating, err
}
