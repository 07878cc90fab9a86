package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	keyPrefix    = "room-booker:lock:"
	pollInterval = 25 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Redis is a lock shared by every instance pointed at the same Redis.
// The TTL bounds how long a crashed holder keeps the key.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	logger logger.Logger
}

func NewRedis(client *redis.Client, ttl, wait time.Duration, log logger.Logger) *Redis {
	if wait <= 0 {
		wait = defaultWait
	}
	if ttl <= 0 {
		ttl = 2 * wait
	}
	return &Redis{client: client, ttl: ttl, wait: wait, logger: log}
}

func (r *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.New().String()
	full := keyPrefix + key
	deadline := time.Now().Add(r.wait)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := r.client.SetNX(ctx, full, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("redis setnx: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLockTimeout, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}

	return func() {
		// the caller's context may already be done when releasing
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, r.client, []string{full}, token).Err(); err != nil {
			r.logger.Warn("release redis lock",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}, nil
}
