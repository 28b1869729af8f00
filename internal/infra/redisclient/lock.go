package redisclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotAcquired = errors.New("leader lock not acquired")

// LeaderLocker guards singleton periodic work so that multiple replicas do
// not run the same sweep concurrently.
type LeaderLocker interface {
	WithLeaderLock(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

type redisLeaderLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderLocker(client *redis.Client, ttl time.Duration) LeaderLocker {
	return &redisLeaderLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *redisLeaderLocker) WithLeaderLock(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:leader:%s", name)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire leader lock: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// Release only deletes the key when the token still matches, so an expired
// lock taken over by another replica is never released from here.
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisLeaderLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release leader lock: %w", err)
	}
	return nil
}
