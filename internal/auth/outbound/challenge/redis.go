package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

const (
	redisCodePrefix    = "auth:challenge:code:"
	redisPendingPrefix = "auth:challenge:pending:"
)

// Redis is a Store backed by redis key TTLs, for deployments running
// more than one instance behind a load balancer.
type Redis struct {
	client *redis.Client
	clock  clock.Clocker
}

// NewRedis constructs a redis-backed store.
func NewRedis(client *redis.Client, clk clock.Clocker) *Redis {
	return &Redis{client: client, clock: clk}
}

// Close is a no-op; the client is shared and closed by the app.
func (r *Redis) Close() error { return nil }

// PutCode stores a code for the email, replacing any previous one.
func (r *Redis) PutCode(ctx context.Context, e Entry) error {
	ttl := e.ExpiresAt.Sub(r.clock.Now())
	if ttl <= 0 {
		return nil
	}

	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("challenge: marshal entry: %w", err)
	}

	return r.client.Set(ctx, redisCodePrefix+e.Email, b, ttl).Err()
}

// GetCode returns the live entry for the email.
func (r *Redis) GetCode(ctx context.Context, email string) (*Entry, error) {
	b, err := r.client.Get(ctx, redisCodePrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("challenge: unmarshal entry: %w", err)
	}

	return &e, nil
}

// DeleteCode removes the entry for the email.
func (r *Redis) DeleteCode(ctx context.Context, email string) error {
	return r.client.Del(ctx, redisCodePrefix+email).Err()
}

// PutPending parks registration credentials until verification.
func (r *Redis) PutPending(ctx context.Context, p entity.PendingRegistration, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("challenge: marshal pending: %w", err)
	}

	return r.client.Set(ctx, redisPendingPrefix+p.Email, b, ttl).Err()
}

// GetPending returns the parked credentials for the email.
func (r *Redis) GetPending(ctx context.Context, email string) (*entity.PendingRegistration, error) {
	b, err := r.client.Get(ctx, redisPendingPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p entity.PendingRegistration
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("challenge: unmarshal pending: %w", err)
	}

	return &p, nil
}

// DeletePending removes the parked credentials for the email.
func (r *Redis) DeletePending(ctx context.Context, email string) error {
	return r.client.Del(ctx, redisPendingPrefix+email).Err()
}

// SweepExpired is a no-op because redis evicts expired keys itself.
func (r *Redis) SweepExpired(context.Context) (int, error) {
	return 0, nil
}
