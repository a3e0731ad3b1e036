package results

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	redisclient "github.com/junglerando/rando-api/internal/redis"
)

const (
	// Key pattern: result:{gen_key}
	resultKeyPrefix = "result:"

	// DefaultTTL keeps results long enough for a slow client to come back.
	DefaultTTL = time.Hour

	errResultNil   = "result cannot be nil"
	errGenKeyEmpty = "gen key cannot be empty"
	errBothOutcome = "result cannot carry both an artifact and an error"
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

// NewRedisRepository creates a new Redis repository for results
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

// Put stores a result, replacing any earlier result for the key
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument(errResultNil)
	}
	if input.Result.GenKey == "" {
		return nil, errors.InvalidArgument(errGenKeyEmpty)
	}
	if input.Result.Artifact != "" && input.Result.Error != "" {
		return nil, errors.InvalidArgument(errBothOutcome)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	result := *input.Result
	result.CreatedAt = now
	result.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal result")
	}

	if err := r.client.Set(ctx, r.buildKey(result.GenKey), data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store result in Redis")
	}

	return &PutOutput{Result: &result}, nil
}

// Get retrieves a result by gen key
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GenKey == "" {
		return nil, errors.InvalidArgument(errGenKeyEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.GenKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("no result for %s", input.GenKey)
		}
		return nil, errors.Wrapf(err, "failed to get result from Redis")
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal result")
	}

	return &GetOutput{Result: &result}, nil
}

// Delete removes a result
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GenKey == "" {
		return nil, errors.InvalidArgument(errGenKeyEmpty)
	}

	removed, err := r.client.Del(ctx, r.buildKey(input.GenKey)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete result from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func (r *redisRepository) buildKey(genKey string) string {
	return resultKeyPrefix + genKey
}
