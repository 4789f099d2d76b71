package profile_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"music-storefront/internal/domain"
	"music-storefront/internal/mocks"
	"music-storefront/internal/service/profile"
	"music-storefront/internal/shopapi"
)

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	session := &domain.Session{ID: "s1", AccessToken: "t", User: domain.User{ID: "7", Name: "Ann"}}

	t.Run("Should store the reloaded user after an update", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := profile.NewService(userRepo, sessionRepo, zap.NewNop())

		name := "Anna"
		input := domain.UpdateProfileInput{Name: &name}
		userRepo.On("UpdateProfile", ctx, "t", input).Return(nil).Once()
		userRepo.On("GetProfile", ctx, "t").Return(&domain.User{ID: "7", Name: "Anna"}, nil).Once()
		sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Session) bool {
			return s.ID == "s1" && s.User.Name == "Anna"
		})).Return(nil).Once()

		updated, err := svc.Update(ctx, session, input)

		require.NoError(t, err)
		assert.Equal(t, "Anna", updated.User.Name)
		userRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Should keep the session when the shop API rejects the update", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := profile.NewService(userRepo, sessionRepo, zap.NewNop())

		rejected := &shopapi.APIError{StatusCode: http.StatusBadRequest, Detail: "Неверный текущий пароль"}
		userRepo.On("UpdateProfile", ctx, "t", mock.Anything).Return(rejected).Once()

		_, err := svc.Update(ctx, session, domain.UpdateProfileInput{})

		assert.ErrorIs(t, err, rejected)
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should drop the session of a deleted profile", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := profile.NewService(userRepo, sessionRepo, zap.NewNop())

		userRepo.On("DeleteProfile", ctx, "t").Return(nil).Once()
		sessionRepo.On("Delete", ctx, "s1").Return(errors.New("redis down")).Once()

		assert.NoError(t, svc.Delete(ctx, session))
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Should pass uploads through", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := profile.NewService(userRepo, new(mocks.SessionRepository), zap.NewNop())

		content := strings.NewReader("png")
		userRepo.On("UploadAvatar", ctx, "t", "me.png", content).Return(nil).Once()

		assert.NoError(t, svc.UploadAvatar(ctx, session, "me.png", content))
	})

	t.Run("Should map a missing avatar", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := profile.NewService(userRepo, new(mocks.SessionRepository), zap.NewNop())

		userRepo.On("GetAvatar", ctx, domain.ID("3")).Return(nil, &shopapi.APIError{StatusCode: http.StatusNotFound}).Once()

		_, err := svc.Avatar(ctx, "3")
		assert.ErrorIs(t, err, domain.ErrAvatarNotFound)
	})
}
