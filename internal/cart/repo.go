package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
	"github.com/bestshop/storefront-backend/pkg/redis"
)

// Repository persists one cart blob per storefront session.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Delete(ctx context.Context, sessionID string) error
}

// blobStore is the slice of the redis client the repository needs.
type blobStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

type redisRepository struct {
	store blobStore
	logg  *logger.Logger
	ttl   time.Duration
}

// RepositoryParams groups dependencies for the redis cart repository.
type RepositoryParams struct {
	Store      *redis.Client
	Logger     *logger.Logger
	SessionTTL time.Duration
}

// NewRepository builds a redis-backed cart repository. Carts expire after
// SessionTTL of inactivity; every save renews the clock.
func NewRepository(params RepositoryParams) (Repository, error) {
	if params.Store == nil {
		return nil, errors.New("redis client is required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	ttl := params.SessionTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &redisRepository{store: params.Store, logg: params.Logger, ttl: ttl}, nil
}

// Load reads the session's cart. A missing key or a blob that no longer
// parses both degrade to an empty cart; the parse failure is logged.
func (r *redisRepository) Load(ctx context.Context, sessionID string) ([]Line, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	raw, err := r.store.Get(ctx, r.store.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Line{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		r.logg.Error(ctx, "discarding unreadable cart blob", err)
		return []Line{}, nil
	}
	return lines, nil
}

// Save overwrites the session's cart blob. Last write wins; concurrent
// writers for the same session are not coordinated.
func (r *redisRepository) Save(ctx context.Context, sessionID string, lines []Line) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if lines == nil {
		lines = []Line{}
	}

	blob, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := r.store.Set(ctx, r.store.CartKey(sessionID), blob, r.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

// Delete drops the session's cart entirely.
func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if err := r.store.Del(ctx, r.store.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart")
	}
	return nil
}
