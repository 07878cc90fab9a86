package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"

	idempotencyKeyConstraint = "reservations_idempotency_key_key"
)

const reservationColumns = `id, room_id, check_in, check_out, adults, children, special_requests,
	payment_method, nights, nightly_rate, subtotal, tax, service_charge, total, status,
	requester_kind, account_id, guest_name, guest_email, guest_phone, guest_address, booked_by,
	staff_notes, idempotency_key, created_at, updated_at,
	confirmed_at, checked_in_at, checked_out_at, cancelled_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create relies on the reservations_no_overlap exclusion constraint; the room row lock
// only serializes writers of the same room.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var roomID string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, res.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	query := `INSERT INTO reservations (` + reservationColumns + `, guest_phone_normalized)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			          $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)`

	var guest domain.GuestProfile
	if res.Requester.Guest != nil {
		guest = *res.Requester.Guest
	}

	_, err = tx.ExecContext(ctx, query,
		res.ID, res.RoomID, res.Range.CheckIn, res.Range.CheckOut,
		res.Party.Adults, res.Party.Children, res.SpecialRequests, res.PaymentMethod,
		res.Price.Nights, res.Price.NightlyRate, res.Price.Subtotal, res.Price.Tax,
		res.Price.ServiceCharge, res.Price.Total, res.Status,
		res.Requester.Kind, nullString(res.Requester.AccountID),
		nullString(guest.Name), nullString(guest.Email), nullString(guest.Phone), nullString(guest.Address),
		nullString(res.Requester.BookedBy),
		res.StaffNotes, nullString(res.IdempotencyKey), res.CreatedAt, res.UpdatedAt,
		res.ConfirmedAt, res.CheckedInAt, res.CheckedOutAt, res.CancelledAt,
		nullString(domain.NormalizePhone(guest.Phone)),
	)
	if err != nil {
		return insertError(err, res)
	}

	return tx.Commit()
}

// insertError turns the store's guards into domain errors: the overlap exclusion
// constraint into a conflict, the idempotency key into a duplicate request.
func insertError(err error, res *domain.Reservation) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgExclusionViolation:
			return fmt.Errorf("%w: room %s, %s", domain.ErrConflict, res.RoomID, res.Range)
		case pgErr.Code == pgUniqueViolation && pgErr.Constraint == idempotencyKeyConstraint:
			return domain.ErrDuplicateRequest
		}
	}
	return fmt.Errorf("insert reservation: %w", err)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *ReservationRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE idempotency_key = $1`
	return r.getOne(ctx, query, key)
}

func (r *ReservationRepository) ListByRoom(ctx context.Context, roomID string, window *domain.DateRange) ([]*domain.Reservation, error) {
	if window == nil {
		query := `SELECT ` + reservationColumns + `
				  FROM reservations
				  WHERE room_id = $1
				  ORDER BY check_in, created_at`
		return r.list(ctx, query, roomID)
	}

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE room_id = $1 AND check_in < $3 AND check_out > $2
			  ORDER BY check_in, created_at`
	return r.list(ctx, query, roomID, window.CheckIn, window.CheckOut)
}

func (r *ReservationRepository) ListActiveByRoom(ctx context.Context, roomID string, window domain.DateRange) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE room_id = $1 AND status = ANY($2) AND check_in < $4 AND check_out > $3
			  ORDER BY check_in`
	return r.list(ctx, query, roomID, pq.Array(domain.ActiveStatuses), window.CheckIn, window.CheckOut)
}

func (r *ReservationRepository) ListByPhone(ctx context.Context, normalizedPhone string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE requester_kind = $1 AND guest_phone_normalized = $2
			  ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, domain.RequesterGuest, normalizedPhone)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus, at time.Time) error {
	query := `UPDATE reservations
			  SET status = $3::text,
			      updated_at = $4,
			      confirmed_at = CASE WHEN $3::text = 'confirmed' THEN $4 ELSE confirmed_at END,
			      checked_in_at = CASE WHEN $3::text = 'checked-in' THEN $4 ELSE checked_in_at END,
			      checked_out_at = CASE WHEN $3::text = 'checked-out' THEN $4 ELSE checked_out_at END,
			      cancelled_at = CASE WHEN $3::text = 'cancelled' THEN $4 ELSE cancelled_at END
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to, at)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// either the reservation is gone or its status moved on
	var current domain.ReservationStatus
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}
	if err = row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("scan status: %w", err)
	}
	return &domain.InvalidTransitionError{From: current, To: to, Reason: "status changed concurrently"}
}

func (r *ReservationRepository) UpdateNotes(ctx context.Context, id, notes string, at time.Time) error {
	query := `UPDATE reservations SET staff_notes = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, notes, at)
	if err != nil {
		return fmt.Errorf("update notes: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notes rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) CancelStalePending(ctx context.Context, today, at time.Time) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = $4, cancelled_at = $4
			  WHERE status = $1 AND check_out <= $3
			  RETURNING ` + reservationColumns

	return r.list(ctx, query, domain.StatusPending, domain.StatusCancelled, today, at)
}

func (r *ReservationRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Reservation, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	res := []*domain.Reservation{}
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var (
		res                                          domain.Reservation
		accountID, bookedBy, idempotencyKey          sql.NullString
		guestName, guestEmail, guestPhone, guestAddr sql.NullString
		confirmedAt, checkedInAt, checkedOutAt       sql.NullTime
		cancelledAt                                  sql.NullTime
	)

	err := s.Scan(
		&res.ID, &res.RoomID, &res.Range.CheckIn, &res.Range.CheckOut,
		&res.Party.Adults, &res.Party.Children, &res.SpecialRequests, &res.PaymentMethod,
		&res.Price.Nights, &res.Price.NightlyRate, &res.Price.Subtotal, &res.Price.Tax,
		&res.Price.ServiceCharge, &res.Price.Total, &res.Status,
		&res.Requester.Kind, &accountID, &guestName, &guestEmail, &guestPhone, &guestAddr, &bookedBy,
		&res.StaffNotes, &idempotencyKey, &res.CreatedAt, &res.UpdatedAt,
		&confirmedAt, &checkedInAt, &checkedOutAt, &cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	res.Range.CheckIn = domain.DateOf(res.Range.CheckIn)
	res.Range.CheckOut = domain.DateOf(res.Range.CheckOut)
	res.Requester.AccountID = accountID.String
	res.Requester.BookedBy = bookedBy.String
	res.IdempotencyKey = idempotencyKey.String
	if res.Requester.Kind == domain.RequesterGuest {
		res.Requester.Guest = &domain.GuestProfile{
			Name:    guestName.String,
			Email:   guestEmail.String,
			Phone:   guestPhone.String,
			Address: guestAddr.String,
		}
	}
	res.ConfirmedAt = timePtr(confirmedAt)
	res.CheckedInAt = timePtr(checkedInAt)
	res.CheckedOutAt = timePtr(checkedOutAt)
	res.CancelledAt = timePtr(cancelledAt)

	return &res, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
