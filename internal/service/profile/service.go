package profile

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

type Service interface {
	Get(ctx context.Context, session *domain.Session) (*domain.User, error)
	// Update returns the reloaded profile and the session carrying it.
	Update(ctx context.Context, session *domain.Session, input domain.UpdateProfileInput) (*domain.Session, error)
	Delete(ctx context.Context, session *domain.Session) error
	UploadAvatar(ctx context.Context, session *domain.Session, filename string, content io.Reader) error
	Avatar(ctx context.Context, userID domain.ID) (*shopapi.Blob, error)
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	logger      *zap.Logger
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, logger *zap.Logger) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger.Named("profile"),
	}
}

func (s *service) Get(ctx context.Context, session *domain.Session) (*domain.User, error) {
	return s.userRepo.GetProfile(ctx, session.AccessToken)
}

func (s *service) Update(ctx context.Context, session *domain.Session, input domain.UpdateProfileInput) (*domain.Session, error) {
	if err := s.userRepo.UpdateProfile(ctx, session.AccessToken, input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetProfile(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}

	updated := *session
	updated.User = *user
	if err := s.sessionRepo.Create(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, session *domain.Session) error {
	if err := s.userRepo.DeleteProfile(ctx, session.AccessToken); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		s.logger.Warn("failed to drop session of deleted user", zap.String("session_id", session.ID), zap.Error(err))
	}
	s.logger.Info("profile deleted", zap.String("user_id", session.User.ID.String()))
	return nil
}

func (s *service) UploadAvatar(ctx context.Context, session *domain.Session, filename string, content io.Reader) error {
	return s.userRepo.UploadAvatar(ctx, session.AccessToken, filename, content)
}

func (s *service) Avatar(ctx context.Context, userID domain.ID) (*shopapi.Blob, error) {
	blob, err := s.userRepo.GetAvatar(ctx, userID)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{http.StatusNotFound: domain.ErrAvatarNotFound})
	}
	return blob, nil
}
