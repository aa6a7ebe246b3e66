package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"medequip-support-be/pkg/store"
)

// TranscriptArchive mirrors finished conversation turns into Redis so a
// transcript outlives the in-memory session. The bounded in-session history
// stays authoritative for the pipeline; the archive is a durable copy.
type TranscriptArchive struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTranscriptArchive(redisURL string, ttl time.Duration) (*TranscriptArchive, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &TranscriptArchive{
		client: client,
		ttl:    ttl,
	}, nil
}

func (a *TranscriptArchive) key(sessionID string) string {
	return fmt.Sprintf("transcript:%s", sessionID)
}

// AppendTurn pushes one rendered turn onto the session's transcript list and
// refreshes its TTL.
func (a *TranscriptArchive) AppendTurn(ctx context.Context, sessionID string, turn store.ConversationTurn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	key := a.key(sessionID)
	pipe := a.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, a.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive turn: %w", err)
	}
	return nil
}

// Turns returns the archived transcript in arrival order.
func (a *TranscriptArchive) Turns(ctx context.Context, sessionID string) ([]store.ConversationTurn, error) {
	raw, err := a.client.LRange(ctx, a.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	turns := make([]store.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn store.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to parse archived turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Clear drops the archived transcript for a session.
func (a *TranscriptArchive) Clear(ctx context.Context, sessionID string) error {
	return a.client.Del(ctx, a.key(sessionID)).Err()
}
