package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newRedisLock(t *testing.T, ttl, wait time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	return NewRedis(client, ttl, wait, log), mr
}

func TestRedis_AcquireSetsKeyWithTTL(t *testing.T) {
	l, mr := newRedisLock(t, 10*time.Second, 100*time.Millisecond)

	release, err := l.Acquire(context.Background(), "room:R201")
	require.NoError(t, err)

	assert.True(t, mr.Exists(keyPrefix+"room:R201"))
	assert.Equal(t, 10*time.Second, mr.TTL(keyPrefix+"room:R201"))

	release()
	assert.False(t, mr.Exists(keyPrefix+"room:R201"))
}

func TestRedis_HeldKeyTimesOut(t *testing.T) {
	l, _ := newRedisLock(t, 10*time.Second, 80*time.Millisecond)

	release, err := l.Acquire(context.Background(), "room:R201")
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, err = l.Acquire(context.Background(), "room:R201")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)

	other, err := l.Acquire(context.Background(), "room:R202")
	require.NoError(t, err)
	other()
}

func TestRedis_ReacquireAfterRelease(t *testing.T) {
	l, _ := newRedisLock(t, 10*time.Second, time.Second)

	release, err := l.Acquire(context.Background(), "room:R201")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := l.Acquire(context.Background(), "room:R201")
		if assert.NoError(t, err) {
			r()
		}
		close(acquired)
	}()

	time.Sleep(50 * time.Millisecond)
	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not get the lock after release")
	}
}

func TestRedis_ReleaseKeepsForeignToken(t *testing.T) {
	l, mr := newRedisLock(t, time.Second, 100*time.Millisecond)
	key := keyPrefix + "room:R201"

	stale, err := l.Acquire(context.Background(), "room:R201")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists(key))

	current, err := l.Acquire(context.Background(), "room:R201")
	require.NoError(t, err)
	token, err := mr.Get(key)
	require.NoError(t, err)

	stale()

	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	current()
	assert.False(t, mr.Exists(key))
}

func TestRedis_ContextCancelledWhileWaiting(t *testing.T) {
	l, _ := newRedisLock(t, 10*time.Second, time.Second)

	release, err := l.Acquire(context.Background(), "room:R201")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "room:R201")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
