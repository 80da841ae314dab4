package roster

import (
	"context"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hev-builder/internal/errors"
	redisclient "github.com/KirkDiggler/hev-builder/internal/redis"
)

// auditScanCount is the SCAN page size hint
const auditScanCount = 100

// AuditInput controls an audit run. With Fix set, corrupt rosters are
// deleted and unindexed rosters are added back to the index.
type AuditInput struct {
	Fix bool
}

// AuditOutput reports what an audit found
type AuditOutput struct {
	Checked int
	// Corrupt holds ids whose stored value does not decode as a roster
	Corrupt []string
	// Unindexed holds ids stored under a roster key but missing from the
	// index, so List never returns them
	Unindexed []string
	Fixed     bool
}

// Auditor scans the Redis roster keyspace for records List cannot serve
type Auditor struct {
	client redisclient.Client
	logger *slog.Logger
}

// NewAuditor creates an auditor over the same keys as the Redis repository
func NewAuditor(cfg *RedisConfig) (*Auditor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Auditor{client: cfg.Client, logger: logger}, nil
}

// Audit walks every roster key once
func (a *Auditor) Audit(ctx context.Context, input AuditInput) (*AuditOutput, error) {
	out := &AuditOutput{Corrupt: []string{}, Unindexed: []string{}}
	var repairs []redis.Z

	iter := a.client.Scan(ctx, 0, rosterKeyPrefix+"*", auditScanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == rosterIndexKey {
			continue
		}
		id := strings.TrimPrefix(key, rosterKeyPrefix)
		out.Checked++

		data, err := a.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		roster, err := decodeRoster(data)
		if err != nil || roster.ID != id {
			a.logger.WarnContext(ctx, "corrupt roster record", "key", key)
			out.Corrupt = append(out.Corrupt, id)
			continue
		}

		if err := a.client.ZScore(ctx, rosterIndexKey, id).Err(); err != nil {
			if err != redis.Nil {
				return nil, errors.Wrapf(err, "failed to check index for %s", id)
			}
			a.logger.WarnContext(ctx, "roster missing from index", "roster_id", id)
			out.Unindexed = append(out.Unindexed, id)
			repairs = append(repairs, redis.Z{Score: float64(roster.CreatedAt.UnixNano()), Member: id})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan rosters")
	}

	if !input.Fix || (len(out.Corrupt) == 0 && len(repairs) == 0) {
		return out, nil
	}

	pipe := a.client.TxPipeline()
	for _, id := range out.Corrupt {
		pipe.Del(ctx, rosterKey(id))
		pipe.ZRem(ctx, rosterIndexKey, id)
	}
	if len(repairs) > 0 {
		pipe.ZAddNX(ctx, rosterIndexKey, repairs...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to repair rosters")
	}
	out.Fixed = true

	a.logger.InfoContext(ctx, "repaired roster store",
		"deleted", len(out.Corrupt),
		"reindexed", len(repairs))

	return out, nil
}
