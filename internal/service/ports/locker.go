package ports

import (
	"context"
	"time"
)

// Locker serializes work on a key. Acquire waits a bounded time and fails with
// domain.ErrLockTimeout when the key stays held.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type Clock interface {
	Now() time.Time
}
