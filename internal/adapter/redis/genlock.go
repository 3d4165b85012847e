package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still holds the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockClient is the subset of *goredis.Client the lock needs.
type LockClient interface {
	goredis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *goredis.BoolCmd
}

// GenerationLock is a per-list mutual exclusion lock stored in Redis.
type GenerationLock struct {
	rdb    LockClient
	prefix string
}

// NewGenerationLock creates a lock using keys "<prefix>genlock:<list id>".
func NewGenerationLock(rdb LockClient, prefix string) *GenerationLock {
	return &GenerationLock{rdb: rdb, prefix: prefix}
}

func (l *GenerationLock) key(listID uuid.UUID) string {
	return l.prefix + "genlock:" + listID.String()
}

// TryAcquire sets the lock key with SET NX PX. Returns false if it is held.
func (l *GenerationLock) TryAcquire(ctx context.Context, listID uuid.UUID, holder string, ttl time.Duration) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, l.key(listID), holder, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire generation lock %s: %w", listID, err)
	}
	return ok, nil
}

// Release deletes the lock if holder still owns it.
func (l *GenerationLock) Release(ctx context.Context, listID uuid.UUID, holder string) error {
	if err := releaseScript.Run(ctx, l.rdb, []string{l.key(listID)}, holder).Err(); err != nil {
		return fmt.Errorf("release generation lock %s: %w", listID, err)
	}
	return nil
}
