package comment

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"music-storefront/internal/commenttree"
	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

type Service interface {
	// DefaultOptions are the tree limits used when a caller sets none.
	DefaultOptions() commenttree.Options
	Tree(ctx context.Context, productID domain.ID, opts commenttree.Options) (*domain.CommentTree, error)
	Create(ctx context.Context, session *domain.Session, productID domain.ID, input domain.CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, session *domain.Session, commentID domain.ID, input domain.UpdateCommentInput) (*domain.Comment, error)
	// Vote toggles the user's vote; a nil vote means it was withdrawn.
	Vote(ctx context.Context, session *domain.Session, commentID domain.ID, value int) (*domain.CommentVote, error)
	Rating(ctx context.Context, commentID domain.ID) (domain.CommentRating, error)
}

type service struct {
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
	defaults    commenttree.Options
	logger      *zap.Logger
}

func NewService(commentRepo repository.CommentRepository, productRepo repository.ProductRepository, defaults commenttree.Options, logger *zap.Logger) Service {
	return &service{
		commentRepo: commentRepo,
		productRepo: productRepo,
		defaults:    defaults,
		logger:      logger.Named("comment"),
	}
}

func (s *service) DefaultOptions() commenttree.Options {
	return s.defaults
}

func (s *service) Tree(ctx context.Context, productID domain.ID, opts commenttree.Options) (*domain.CommentTree, error) {
	comments, err := s.commentRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrProductNotFound})
	}

	return &domain.CommentTree{
		ProductID: productID,
		Total:     len(comments),
		Comments:  commenttree.Build(comments, opts),
	}, nil
}

func (s *service) Create(ctx context.Context, session *domain.Session, productID domain.ID, input domain.CreateCommentInput) (*domain.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}

	comment := &domain.Comment{
		ProductID: productID,
		UserID:    session.User.ID,
		ParentID:  input.ParentID,
		Content:   content,
	}

	notFound := domain.ErrProductNotFound
	if input.ParentID != nil {
		notFound = domain.ErrCommentNotFound
	}
	if err := s.commentRepo.Create(ctx, session.AccessToken, comment); err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{
			http.StatusForbidden: domain.ErrPurchaseRequired,
			http.StatusNotFound:  notFound,
		})
	}

	if comment.User == nil {
		comment.User = &domain.CommentAuthor{
			ID:     session.User.ID,
			Name:   session.User.Name,
			Avatar: session.User.Avatar,
		}
	}

	if input.Rating > 0 {
		if _, err := s.productRepo.Rate(ctx, session.AccessToken, productID, input.Rating); err != nil {
			s.logger.Warn("comment saved but product rating failed",
				zap.String("product_id", productID.String()),
				zap.String("comment_id", comment.ID.String()),
				zap.Error(err),
			)
		}
	}

	return comment, nil
}

func (s *service) Update(ctx context.Context, session *domain.Session, commentID domain.ID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}

	comment := &domain.Comment{
		ID:        commentID,
		ProductID: input.ProductID,
		UserID:    session.User.ID,
		Content:   content,
	}
	if err := s.commentRepo.Update(ctx, session.AccessToken, comment); err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{
			http.StatusForbidden: domain.ErrNotCommentAuthor,
			http.StatusNotFound:  domain.ErrCommentNotFound,
		})
	}
	return comment, nil
}

func (s *service) Vote(ctx context.Context, session *domain.Session, commentID domain.ID, value int) (*domain.CommentVote, error) {
	vote, err := s.commentRepo.Vote(ctx, session.AccessToken, commentID, value)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrCommentNotFound})
	}
	return vote, nil
}

func (s *service) Rating(ctx context.Context, commentID domain.ID) (domain.CommentRating, error) {
	rating, err := s.commentRepo.GetRating(ctx, commentID)
	if err != nil {
		return rating, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrCommentNotFound})
	}
	return rating, nil
}
