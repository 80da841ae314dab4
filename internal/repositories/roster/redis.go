package roster

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
	redisclient "github.com/KirkDiggler/hev-builder/internal/redis"
)

const (
	rosterKeyPrefix = "roster:"
	// rosterIndexKey is a sorted set of roster ids scored by creation time
	rosterIndexKey = "roster:index"
)

type redisRepository struct {
	client redisclient.Client
	logger *slog.Logger
}

// RedisConfig contains configuration for the Redis roster repository
type RedisConfig struct {
	Client redisclient.Client
	Logger *slog.Logger
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &redisRepository{
		client: cfg.Client,
		logger: logger,
	}, nil
}

func rosterKey(id string) string {
	return rosterKeyPrefix + id
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Roster == nil {
		return nil, errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	data, err := json.Marshal(input.Roster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, rosterKey(input.Roster.ID), data, 0)
	// NX keeps the original creation score when a roster is re-saved
	pipe.ZAddNX(ctx, rosterIndexKey, redis.Z{
		Score:  float64(input.Roster.CreatedAt.UnixNano()),
		Member: input.Roster.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save roster")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	result, err := r.client.Get(ctx, rosterKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get roster")
	}

	roster, err := decodeRoster(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Roster: roster}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	key := rosterKey(input.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.ZRem(ctx, rosterIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRange(ctx, rosterIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roster index")
	}
	if len(ids) == 0 {
		return &ListOutput{Rosters: []*hev.Roster{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = rosterKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get rosters")
	}

	rosters := make([]*hev.Roster, 0, len(values))
	var dangling []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			dangling = append(dangling, ids[i])
			continue
		}
		roster, err := decodeRoster(s)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping unreadable roster; run roster audit --fix to remove it",
				"roster_id", ids[i],
				"error", err)
			continue
		}
		rosters = append(rosters, roster)
	}

	if len(dangling) > 0 {
		r.logger.WarnContext(ctx, "removing dangling roster index entries", "count", len(dangling))
		if err := r.client.ZRem(ctx, rosterIndexKey, dangling...).Err(); err != nil {
			r.logger.ErrorContext(ctx, "failed to clean roster index", "error", err)
		}
	}

	return &ListOutput{Rosters: rosters}, nil
}

func decodeRoster(data string) (*hev.Roster, error) {
	var roster hev.Roster
	if err := json.Unmarshal([]byte(data), &roster); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roster")
	}
	return &roster, nil
}
