package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "advocate:session:"

// SessionRepository maps bearer tokens to user IDs in Redis
type SessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a session repository
func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Create stores a token for the user, expiring after ttl
func (r *SessionRepository) Create(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, sessionKey(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Resolve returns the user owning token. Unknown or expired tokens yield ErrNotFound.
func (r *SessionRepository) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

// Delete removes a token
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
