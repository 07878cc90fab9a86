package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertError(t *testing.T) {
	r, err := domain.ParseDateRange("2025-03-10", "2025-03-12")
	require.NoError(t, err)
	res := &domain.Reservation{RoomID: "R201", Range: r}

	tests := []struct {
		name    string
		err     error
		wantIs  error
		notWant []error
	}{
		{
			name:    "overlap exclusion is a conflict",
			err:     &pq.Error{Code: pgExclusionViolation, Constraint: "reservations_no_overlap"},
			wantIs:  domain.ErrConflict,
			notWant: []error{domain.ErrDuplicateRequest},
		},
		{
			name:    "wrapped exclusion is still a conflict",
			err:     fmt.Errorf("exec: %w", &pq.Error{Code: pgExclusionViolation}),
			wantIs:  domain.ErrConflict,
			notWant: []error{domain.ErrDuplicateRequest},
		},
		{
			name:    "idempotency key taken is a duplicate request",
			err:     &pq.Error{Code: pgUniqueViolation, Constraint: idempotencyKeyConstraint},
			wantIs:  domain.ErrDuplicateRequest,
			notWant: []error{domain.ErrConflict},
		},
		{
			name:    "other unique violation is not a duplicate request",
			err:     &pq.Error{Code: pgUniqueViolation, Constraint: "reservations_pkey"},
			notWant: []error{domain.ErrConflict, domain.ErrDuplicateRequest},
		},
		{
			name:    "non postgres error passes through",
			err:     errors.New("connection reset"),
			notWant: []error{domain.ErrConflict, domain.ErrDuplicateRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insertError(tt.err, res)

			require.Error(t, got)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			} else {
				assert.ErrorIs(t, got, tt.err)
			}
			for _, e := range tt.notWant {
				assert.NotErrorIs(t, got, e)
			}
		})
	}
}
