package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"music-storefront/internal/config"
	"music-storefront/internal/domain"
	"music-storefront/internal/mocks"
	"music-storefront/internal/service/auth"
	"music-storefront/internal/shopapi"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "buyer@shop.test",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("shop-secret"))
	require.NoError(t, err)
	return signed
}

func newService(userRepo *mocks.UserRepository, sessionRepo *mocks.SessionRepository) auth.Service {
	cfg := &config.Config{SessionTTL: 2 * time.Hour}
	return auth.NewService(userRepo, sessionRepo, cfg, zap.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "7", Name: "Ann", Email: "buyer@shop.test"}

	t.Run("Should open a session bounded by token expiry", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newService(userRepo, sessionRepo)

		exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		token := signedToken(t, exp)

		userRepo.On("Login", ctx, "buyer@shop.test", "pa55word").Return(&domain.AccessToken{AccessToken: token}, nil).Once()
		userRepo.On("GetProfile", ctx, token).Return(user, nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil).Once()

		session, err := svc.Login(ctx, domain.LoginInput{Email: " buyer@shop.test ", Password: "pa55word"})

		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, token, session.AccessToken)
		assert.Equal(t, domain.ID("7"), session.User.ID)
		assert.True(t, session.ExpiresAt.Equal(exp))
		userRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Should fall back to the configured TTL for opaque tokens", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newService(userRepo, sessionRepo)

		userRepo.On("Login", ctx, "buyer@shop.test", "pa55word").Return(&domain.AccessToken{AccessToken: "opaque"}, nil).Once()
		userRepo.On("GetProfile", ctx, "opaque").Return(user, nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil).Once()

		before := time.Now()
		session, err := svc.Login(ctx, domain.LoginInput{Email: "buyer@shop.test", Password: "pa55word"})

		require.NoError(t, err)
		assert.WithinDuration(t, before.Add(2*time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("Should map rejected credentials", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newService(userRepo, sessionRepo)

		userRepo.On("Login", ctx, "buyer@shop.test", "wrong").
			Return(nil, &shopapi.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect email or password"}).Once()

		_, err := svc.Login(ctx, domain.LoginInput{Email: "buyer@shop.test", Password: "wrong"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	input := domain.RegisterInput{Email: "New@Shop.Test", Password: "secret1", Name: "New"}

	t.Run("Should detect a duplicate email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := newService(userRepo, new(mocks.SessionRepository))

		userRepo.On("Register", ctx, mock.MatchedBy(func(in domain.RegisterInput) bool {
			return in.Email == "new@shop.test"
		})).Return(nil, &shopapi.APIError{StatusCode: http.StatusInternalServerError, Detail: "400: Email already registered"}).Once()

		_, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("Should open a session for the new user", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newService(userRepo, sessionRepo)

		userRepo.On("Register", ctx, mock.Anything).Return(&domain.AccessToken{AccessToken: "t"}, nil).Once()
		userRepo.On("GetProfile", ctx, "t").Return(&domain.User{ID: "9"}, nil).Once()
		sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		session, err := svc.Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, domain.ID("9"), session.User.ID)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)
	svc := newService(userRepo, sessionRepo)

	session := &domain.Session{ID: "s1", AccessToken: "t", User: domain.User{ID: "7", Name: "Old"}}
	userRepo.On("GetProfile", ctx, "t").Return(&domain.User{ID: "7", Name: "New"}, nil).Once()
	sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Session) bool {
		return s.ID == "s1" && s.User.Name == "New"
	})).Return(nil).Once()

	refreshed, err := svc.Refresh(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, "New", refreshed.User.Name)
	assert.Equal(t, "Old", session.User.Name)
	sessionRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	sessionRepo := new(mocks.SessionRepository)
	svc := newService(new(mocks.UserRepository), sessionRepo)

	sessionRepo.On("Delete", mock.Anything, "s1").Return(nil).Once()

	assert.NoError(t, svc.Logout(context.Background(), "s1"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
	sessionRepo.AssertExpectations(t)
}
