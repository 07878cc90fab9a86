// Package lock serializes per-key critical sections such as one room's commit.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

const defaultWait = 3 * time.Second

// Local is an in-process keyed mutex. Waiters give up after the configured wait.
type Local struct {
	mu   sync.Mutex
	keys map[string]*slot
	wait time.Duration
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewLocal(wait time.Duration) *Local {
	if wait <= 0 {
		wait = defaultWait
	}
	return &Local{keys: make(map[string]*slot), wait: wait}
}

func (l *Local) Acquire(ctx context.Context, key string) (func(), error) {
	s := l.ref(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
	case <-timer.C:
		l.unref(key)
		return nil, fmt.Errorf("%w: %s", domain.ErrLockTimeout, key)
	case <-ctx.Done():
		l.unref(key)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.unref(key)
		})
	}, nil
}

func (l *Local) ref(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.keys[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.keys[key] = s
	}
	s.refs++
	return s
}

func (l *Local) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.keys[key]
	s.refs--
	if s.refs == 0 {
		delete(l.keys, key)
	}
}
