package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 25 * time.Millisecond
)

// TenderLock serializes tender-scoped mutations across instances.
// Key format: lock:tender:<tender_id>, acquired with SET NX and a TTL so a
// crashed holder cannot leave the tender locked forever.
type TenderLock struct {
	client *redis.Client
}

// NewTenderLock creates a TenderLock wrapping the given Redis client.
func NewTenderLock(client *redis.Client) *TenderLock {
	return &TenderLock{client: client}
}

// Lock blocks until the tender lock is acquired or ctx is done, then returns
// the release function.
func (l *TenderLock) Lock(ctx context.Context, tenderID string) (func(), error) {
	key := l.key(tenderID)

	for {
		ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire tender lock: %w", err)
		}
		if ok {
			return func() {
				// Release is best effort; the TTL reclaims the lock otherwise.
				_ = l.client.Del(context.WithoutCancel(ctx), key).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}
}

func (l *TenderLock) key(tenderID string) string {
	return "lock:tender:" + tenderID
}
