package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SerializesSameKey(t *testing.T) {
	l := NewLocal(time.Second)

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "room:101")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, l.keys)
}

func TestLocal_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewLocal(50 * time.Millisecond)

	r1, err := l.Acquire(context.Background(), "room:101")
	require.NoError(t, err)
	defer r1()

	r2, err := l.Acquire(context.Background(), "room:102")
	require.NoError(t, err)
	r2()
}

func TestLocal_TimesOut(t *testing.T) {
	l := NewLocal(30 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "room:101")
	require.NoError(t, err)
	defer release()

	_, err = l.Acquire(context.Background(), "room:101")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)
}

func TestLocal_ContextCancelled(t *testing.T) {
	l := NewLocal(time.Second)

	release, err := l.Acquire(context.Background(), "room:101")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "room:101")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocal_ReleaseIsIdempotent(t *testing.T) {
	l := NewLocal(50 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	release()
	release()

	again, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	again()
}
