package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"music-storefront/internal/config"
	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

type Service interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	// Resolve returns nil, nil when the session is unknown or expired.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
	// Refresh reloads the user from the shop API and stores it on the session.
	Refresh(ctx context.Context, session *domain.Session) (*domain.Session, error)
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		logger:      logger.Named("auth"),
		now:         time.Now,
	}
}

func (s *service) Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	token, err := s.userRepo.Register(ctx, input)
	if err != nil {
		if isEmailTaken(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	session, err := s.open(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("user_id", session.User.ID.String()))
	return session, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.Session, error) {
	token, err := s.userRepo.Login(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return nil, shopapi.MapStatus(err, map[int]error{
			http.StatusUnauthorized: domain.ErrInvalidCredentials,
			http.StatusBadRequest:   domain.ErrInvalidCredentials,
		})
	}
	return s.open(ctx, token.AccessToken)
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *service) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessionRepo.Get(ctx, sessionID)
}

func (s *service) Refresh(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	user, err := s.userRepo.GetProfile(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}

	refreshed := *session
	refreshed.User = *user
	if err := s.sessionRepo.Create(ctx, &refreshed); err != nil {
		return nil, err
	}
	return &refreshed, nil
}

// open loads the profile behind a fresh access token and stores a new session
// for it.
func (s *service) open(ctx context.Context, accessToken string) (*domain.Session, error) {
	user, err := s.userRepo.GetProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	now := s.now()
	session := &domain.Session{
		ID:          uuid.NewString(),
		AccessToken: accessToken,
		User:        *user,
		CreatedAt:   now,
		ExpiresAt:   s.expiry(accessToken, now),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// expiry ends the session no later than the access token itself. The token
// is only read, never verified: the shop API remains the authority on it.
func (s *service) expiry(accessToken string, now time.Time) time.Time {
	fallback := now.Add(s.cfg.SessionTTL)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		s.logger.Debug("access token is not a readable JWT", zap.Error(err))
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(now) {
		return fallback
	}
	if exp.Time.Before(fallback) {
		return exp.Time
	}
	return fallback
}

// isEmailTaken recognises the duplicate-email answer, which the shop API
// reports with a 400 or, wrapped by its own error handler, a 500.
func isEmailTaken(err error) bool {
	var apiErr *shopapi.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode != http.StatusBadRequest && apiErr.StatusCode != http.StatusInternalServerError {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Detail), "already registered")
}
