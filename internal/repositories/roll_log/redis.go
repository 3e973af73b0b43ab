package rolllog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: roll_log:{character_id}
	logKeyPrefix      = "roll_log:"
	defaultTTL        = 24 * time.Hour
	defaultMaxEntries = 50

	errCharacterIDEmpty = "character ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client     redisclient.Client
	Clock      clock.Clock
	TTL        time.Duration
	MaxEntries int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 || c.MaxEntries < 0 {
		return errors.InvalidArgument("ttl and max entries cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	ttl        time.Duration
	maxEntries int
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = defaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		ttl:        ttl,
		maxEntries: maxEntries,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append stores a roll at the head of the log
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	roll := input.Roll
	if roll.RolledAt.IsZero() {
		roll.RolledAt = r.clock.Now()
	}

	rollJSON, err := json.Marshal(roll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll")
	}

	key := r.buildKey(input.CharacterID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, rollJSON)
		pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append roll in Redis")
	}

	return &AppendOutput{Roll: roll}, nil
}

// List returns the retained rolls, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	entries, err := r.client.LRange(ctx, r.buildKey(input.CharacterID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roll log from Redis")
	}

	rolls := make([]Roll, 0, len(entries))
	for _, entry := range entries {
		var roll Roll
		if err := json.Unmarshal([]byte(entry), &roll); err != nil {
			slog.WarnContext(ctx, "skipping malformed roll log entry",
				"character_id", input.CharacterID,
				"error", err)
			continue
		}
		rolls = append(rolls, roll)
	}

	return &ListOutput{Rolls: rolls}, nil
}

// Clear removes the whole log
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := r.buildKey(input.CharacterID)

	var count *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.LLen(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll log in Redis")
	}

	return &ClearOutput{Cleared: int(count.Val())}, nil
}

// buildKey creates the Redis key for a character's roll log
func (r *redisRepository) buildKey(characterID string) string {
	return logKeyPrefix + characterID
}
