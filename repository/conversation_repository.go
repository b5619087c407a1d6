package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"advocate-backend/models"

	"github.com/redis/go-redis/v9"
)

const conversationKeyPrefix = "advocate:conversation:"

// ConversationRepository stores per-session conversation logs in Redis lists
type ConversationRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewConversationRepository creates a conversation repository. Each append
// extends the log's lifetime to ttl; zero keeps logs forever.
func NewConversationRepository(rdb *redis.Client, ttl time.Duration) *ConversationRepository {
	return &ConversationRepository{rdb: rdb, ttl: ttl}
}

func conversationKey(sessionID string) string {
	return conversationKeyPrefix + sessionID
}

// Append adds an entry to the end of the session's log
func (r *ConversationRepository) Append(ctx context.Context, sessionID string, entry models.ConversationEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode conversation entry: %w", err)
	}

	key := conversationKey(sessionID)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, string(data))
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append conversation entry: %w", err)
	}
	return nil
}

// List returns the session's log in append order
func (r *ConversationRepository) List(ctx context.Context, sessionID string) ([]models.ConversationEntry, error) {
	raw, err := r.rdb.LRange(ctx, conversationKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}

	entries := make([]models.ConversationEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.ConversationEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode conversation entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Clear removes the session's log
func (r *ConversationRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, conversationKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}
