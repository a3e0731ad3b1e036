package seeds

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	redisclient "github.com/junglerando/rando-api/internal/redis"
)

const (
	// Key pattern: seed:{seed_id}
	seedKeyPrefix = "seed:"
	// Sorted set of seed ids scored by creation time in milliseconds
	recentKey = "seeds:recent"

	// DefaultListLimit applies when ListRecent is called without a limit
	DefaultListLimit = 20
	// MaxListLimit caps a single listing
	MaxListLimit = 100

	errSeedIDEmpty = "seed id cannot be empty"
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

// NewRedisRepository creates a new Redis repository for seeds
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Put stores the seed and indexes it by time. Seeds are never expired.
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("seed_id", input.SeedID, vb)
	errors.ValidateRequired("hash", input.Hash, vb)
	if len(input.SpoilerLog) == 0 {
		vb.RequiredField("spoiler_log")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	record := &Record{
		Key:        fmt.Sprintf("%d%s", now.Unix(), input.Hash),
		SeedID:     input.SeedID,
		Hash:       input.Hash,
		SpoilerLog: input.SpoilerLog,
		CreatedAt:  now,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal seed")
	}

	seedKey := seedKeyPrefix + record.SeedID

	created, err := r.client.SetNX(ctx, seedKey, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store seed")
	}
	if !created {
		return nil, errors.AlreadyExistsf("seed %s already stored", record.SeedID)
	}

	if err := r.client.ZAdd(ctx, recentKey, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: record.SeedID,
	}).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index seed")
	}

	return &PutOutput{Record: record}, nil
}

// GetBySeedID retrieves a seed
func (r *redisRepository) GetBySeedID(ctx context.Context, input GetBySeedIDInput) (*GetBySeedIDOutput, error) {
	if input.SeedID == "" {
		return nil, errors.InvalidArgument(errSeedIDEmpty)
	}

	record, err := r.get(ctx, input.SeedID)
	if err != nil {
		return nil, err
	}

	return &GetBySeedIDOutput{Record: record}, nil
}

// ListRecent returns the newest seeds first
func (r *redisRepository) ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	ids, err := r.client.ZRevRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list seeds")
	}
	if len(ids) == 0 {
		return &ListRecentOutput{Records: []*Record{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = seedKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load seeds")
	}

	records := make([]*Record, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// indexed but deleted
			continue
		}
		var record Record
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal seed %s", ids[i])
		}
		records = append(records, &record)
	}

	return &ListRecentOutput{Records: records}, nil
}

func (r *redisRepository) get(ctx context.Context, seedID string) (*Record, error) {
	data, err := r.client.Get(ctx, seedKeyPrefix+seedID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("seed %s not found", seedID)
		}
		return nil, errors.Wrapf(err, "failed to get seed")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal seed")
	}
	return &record, nil
}
