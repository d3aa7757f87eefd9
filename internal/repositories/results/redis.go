package results

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/arena-api/internal/redis"
)

const (
	// Key pattern: match_result:{match_id}
	resultKeyPrefix = "match_result:"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for match results
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save archives a result keyed by its match id. Results have no TTL; the
// archive outlives the in-memory match registry entry.
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument("result cannot be nil")
	}
	if input.Result.MatchID == 0 {
		return nil, errors.InvalidArgument("match ID must be positive")
	}

	stored := *input.Result
	stored.ReportedAt = r.clock.Now()

	resultJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal result")
	}

	key := r.buildKey(stored.MatchID)
	if err := r.client.Set(ctx, key, resultJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store result in Redis")
	}

	return &SaveOutput{Result: &stored}, nil
}

// Get retrieves a result by match id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.MatchID == 0 {
		return nil, errors.InvalidArgument("match ID must be positive")
	}

	key := r.buildKey(input.MatchID)

	resultJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("result for match %d not found", input.MatchID)
		}
		return nil, errors.Wrapf(err, "failed to get result from Redis")
	}

	var result arena.MatchResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal result")
	}

	return &GetOutput{Result: &result}, nil
}

// buildKey creates the Redis key for a match result
func (r *redisRepository) buildKey(matchID uint64) string {
	return fmt.Sprintf("%s%d", resultKeyPrefix, matchID)
}
