package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"anoa.com/schoolregistry/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerSerializesSameKey(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "avatar:1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestLocalLockerTimesOut(t *testing.T) {
	l := NewLocal()

	release, err := l.Acquire(context.Background(), "avatar:2")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "avatar:2")
	assert.ErrorIs(t, err, apperror.ErrLocked)
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	l := NewLocal()

	r1, err := l.Acquire(context.Background(), "avatar:3")
	require.NoError(t, err)
	defer r1()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r2, err := l.Acquire(ctx, "avatar:4")
	require.NoError(t, err)
	r2()
}

func TestReleaseIsIdempotent(t *testing.T) {
	l := NewLocal().(*localLocker)

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	release()
	release()

	assert.Empty(t, l.slots)
}

func TestNewWithoutRedisIsLocal(t *testing.T) {
	_, ok := New(nil, time.Second).(*localLocker)
	assert.True(t, ok)
}
