package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"anoa.com/schoolregistry/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker serializes work on a key across callers.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// New returns a Redis backed locker when rdb is set, an in-process one otherwise.
func New(rdb *redis.Client, ttl time.Duration) Locker {
	if rdb == nil {
		return NewLocal()
	}
	return NewRedis(rdb, ttl)
}

type localLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewLocal() Locker {
	return &localLocker{slots: make(map[string]*slot)}
}

func (l *localLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, s)
		return nil, fmt.Errorf("%s: %w", key, apperror.ErrLocked)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.unref(key, s)
		})
	}, nil
}

func (l *localLocker) unref(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	rdb        *redis.Client
	ttl        time.Duration
	retryEvery time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{rdb: rdb, ttl: ttl, retryEvery: 50 * time.Millisecond}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := fmt.Sprintf("lock:%s", key)
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	ticker := time.NewTicker(l.retryEvery)
	defer ticker.Stop()

	for {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("failed to acquire lock in redis: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", key, apperror.ErrLocked)
		case <-ticker.C:
		}
	}

	return func() {
		// release must run even if the request context is already cancelled
		_ = releaseScript.Run(context.Background(), l.rdb, []string{redisKey}, token).Err()
	}, nil
}
