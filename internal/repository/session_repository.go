package repository

import (
	"context"
	"time"

	"music-storefront/internal/domain"
)

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// Get returns nil, nil for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	cache Cache
	now   func() time.Time
}

func NewSessionRepository(cache Cache) SessionRepository {
	return &sessionRepository{cache: cache, now: time.Now}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return domain.ErrSessionExpired
	}
	return r.cache.Set(ctx, sessionKeyPrefix+session.ID, session, ttl)
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, nil
	}

	var session domain.Session
	found, err := r.cache.Get(ctx, sessionKeyPrefix+id, &session)
	if err != nil || !found {
		return nil, err
	}
	if session.Expired(r.now()) {
		_ = r.cache.Delete(ctx, sessionKeyPrefix+id)
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, sessionKeyPrefix+id)
}
