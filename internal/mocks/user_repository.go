package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessToken), args.Error(1)
}

func (m *UserRepository) Register(ctx context.Context, input domain.RegisterInput) (*domain.AccessToken, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessToken), args.Error(1)
}

func (m *UserRepository) GetProfile(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, token string, input domain.UpdateProfileInput) error {
	args := m.Called(ctx, token, input)
	return args.Error(0)
}

func (m *UserRepository) DeleteProfile(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *UserRepository) UploadAvatar(ctx context.Context, token, filename string, content io.Reader) error {
	args := m.Called(ctx, token, filename, content)
	return args.Error(0)
}

func (m *UserRepository) GetAvatar(ctx context.Context, userID domain.ID) (*shopapi.Blob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopapi.Blob), args.Error(1)
}
