package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) ListByProduct(ctx context.Context, productID domain.ID) ([]domain.Comment, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) Create(ctx context.Context, token string, comment *domain.Comment) error {
	args := m.Called(ctx, token, comment)
	return args.Error(0)
}

func (m *CommentRepository) Update(ctx context.Context, token string, comment *domain.Comment) error {
	args := m.Called(ctx, token, comment)
	return args.Error(0)
}

func (m *CommentRepository) Vote(ctx context.Context, token string, commentID domain.ID, value int) (*domain.CommentVote, error) {
	args := m.Called(ctx, token, commentID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentVote), args.Error(1)
}

func (m *CommentRepository) GetRating(ctx context.Context, commentID domain.ID) (domain.CommentRating, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(domain.CommentRating), args.Error(1)
}
