package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, in, out string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func reservation(t *testing.T, id, in, out string) *domain.Reservation {
	return &domain.Reservation{
		ID:     id,
		RoomID: "r101",
		Range:  stay(t, in, out),
		Status: domain.StatusPending,
	}
}

func TestReservationStore_CreateRejectsOverlap(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, reservation(t, "a", "2025-03-10", "2025-03-15")))

	err := s.Create(ctx, reservation(t, "b", "2025-03-14", "2025-03-16"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	// back-to-back stays share the turnover day
	require.NoError(t, s.Create(ctx, reservation(t, "c", "2025-03-15", "2025-03-17")))
	require.NoError(t, s.Create(ctx, reservation(t, "d", "2025-03-08", "2025-03-10")))
}

func TestReservationStore_OtherRoomDoesNotConflict(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, reservation(t, "a", "2025-03-10", "2025-03-15")))

	other := reservation(t, "b", "2025-03-10", "2025-03-15")
	other.RoomID = "r102"
	assert.NoError(t, s.Create(ctx, other))
}

func TestReservationStore_CancelReleasesDates(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create(ctx, reservation(t, "a", "2025-03-10", "2025-03-15")))
	require.NoError(t, s.UpdateStatus(ctx, "a", domain.StatusPending, domain.StatusCancelled, now))

	active, err := s.ListActiveByRoom(ctx, "r101", stay(t, "2025-03-01", "2025-04-01"))
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, s.Create(ctx, reservation(t, "b", "2025-03-12", "2025-03-13")))

	all, err := s.ListByRoom(ctx, "r101", nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, domain.StatusCancelled, all[0].Status)
	require.NotNil(t, all[0].CancelledAt)
}

func TestReservationStore_UpdateStatusComparesCurrent(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Create(ctx, reservation(t, "a", "2025-03-10", "2025-03-15")))
	require.NoError(t, s.UpdateStatus(ctx, "a", domain.StatusPending, domain.StatusConfirmed, now))

	err := s.UpdateStatus(ctx, "a", domain.StatusPending, domain.StatusCancelled, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = s.UpdateStatus(ctx, "missing", domain.StatusPending, domain.StatusCancelled, now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationStore_IdempotencyKey(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()

	first := reservation(t, "a", "2025-03-10", "2025-03-15")
	first.IdempotencyKey = "k1"
	require.NoError(t, s.Create(ctx, first))

	retry := reservation(t, "b", "2025-04-10", "2025-04-15")
	retry.IdempotencyKey = "k1"
	assert.ErrorIs(t, s.Create(ctx, retry), domain.ErrDuplicateRequest)

	got, err := s.GetByIdempotencyKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = s.GetByIdempotencyKey(ctx, "k2")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationStore_ReturnsCopies(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, reservation(t, "a", "2025-03-10", "2025-03-15")))

	got, err := s.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Status = domain.StatusCancelled

	again, err := s.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestReservationStore_ListByPhone(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	older := reservation(t, "a", "2025-03-10", "2025-03-12")
	older.Requester = domain.GuestRequester(domain.GuestProfile{Name: "Old", Phone: "090-123-4567"}, "")
	older.CreatedAt = base

	newer := reservation(t, "b", "2025-03-12", "2025-03-14")
	newer.Requester = domain.GuestRequester(domain.GuestProfile{Name: "New", Phone: "0901234567"}, "")
	newer.CreatedAt = base.Add(time.Hour)

	account := reservation(t, "c", "2025-03-14", "2025-03-16")
	account.Requester = domain.AccountRequester("acc-1")

	for _, r := range []*domain.Reservation{older, newer, account} {
		require.NoError(t, s.Create(ctx, r))
	}

	got, err := s.ListByPhone(ctx, "0901234567")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	none, err := s.ListByPhone(ctx, "0999999999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReservationStore_CancelStalePending(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	today := domain.DateOf(now)

	ended := reservation(t, "a", "2025-03-07", "2025-03-12")
	inProgress := reservation(t, "b", "2025-03-12", "2025-03-15")
	fresh := reservation(t, "c", "2025-03-20", "2025-03-22")
	confirmed := reservation(t, "d", "2025-03-01", "2025-03-05")
	confirmed.Status = domain.StatusConfirmed
	for _, r := range []*domain.Reservation{ended, inProgress, fresh, confirmed} {
		require.NoError(t, s.Create(ctx, r))
	}

	cancelled, err := s.CancelStalePending(ctx, today, now)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "a", cancelled[0].ID)
	assert.Equal(t, domain.StatusCancelled, cancelled[0].Status)

	got, err := s.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	active, err := s.ListActiveByRoom(ctx, "r101", stay(t, "2025-03-01", "2025-04-01"))
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestReservationStore_UpdateNotes(t *testing.T) {
	s := NewReservationStore()
	ctx := context.Background()
	at := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create(ctx, reservation(t, "a", "2025-03-10", "2025-03-15")))
	require.NoError(t, s.UpdateNotes(ctx, "a", "late arrival", at))

	got, err := s.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "late arrival", got.StaffNotes)
	assert.Equal(t, at, got.UpdatedAt)

	assert.ErrorIs(t, s.UpdateNotes(ctx, "missing", "x", at), domain.ErrReservationNotFound)
}

func TestCatalog_GetByID(t *testing.T) {
	rooms := NewRoomCatalog(domain.Room{ID: "r101", Number: "101", Capacity: 2})
	accounts := NewAccountDirectory(domain.Account{ID: "acc-1", Name: "Lan"})
	ctx := context.Background()

	room, err := rooms.GetByID(ctx, "r101")
	require.NoError(t, err)
	assert.Equal(t, "101", room.Number)

	_, err = rooms.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	acc, err := accounts.GetByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Lan", acc.Name)

	_, err = accounts.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
