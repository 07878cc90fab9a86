package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_SweepsOnStart(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, time.Hour, newTestLogger(t))

	canceller.EXPECT().CancelStalePending(mock.Anything).Return(2, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_SweepErrorDoesNotStopLoop(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, 30*time.Millisecond, newTestLogger(t))

	canceller.EXPECT().CancelStalePending(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	assert.Empty(t, canceller.Calls)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, 30*time.Millisecond, newTestLogger(t))

	canceller.EXPECT().CancelStalePending(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 3)
}
