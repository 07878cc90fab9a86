package domain

import "time"

type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked-in"
	StatusCheckedOut ReservationStatus = "checked-out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// ActiveStatuses hold a room's dates. Only cancelled reservations release them.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut}

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// HoldsDates reports whether a reservation in this status blocks its date range.
func (s ReservationStatus) HoldsDates() bool {
	return s != StatusCancelled
}

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPayAtHotel   PaymentMethod = "pay_at_hotel"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCard, PaymentBankTransfer, PaymentPayAtHotel:
		return true
	}
	return false
}

type PartySize struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

func (p PartySize) Total() int { return p.Adults + p.Children }

// PriceBreakdown is snapshotted on the reservation at creation time.
type PriceBreakdown struct {
	Nights        int   `json:"nights"`
	NightlyRate   Money `json:"nightly_rate"`
	Subtotal      Money `json:"subtotal"`
	Tax           Money `json:"tax"`
	ServiceCharge Money `json:"service_charge"`
	Total         Money `json:"total"`
}

type Reservation struct {
	ID              string            `json:"id"`
	RoomID          string            `json:"room_id"`
	Range           DateRange         `json:"range"`
	Party           PartySize         `json:"party"`
	SpecialRequests string            `json:"special_requests"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	Price           PriceBreakdown    `json:"price"`
	Status          ReservationStatus `json:"status"`
	Requester       RequesterIdentity `json:"requester"`
	StaffNotes      string            `json:"staff_notes"`
	IdempotencyKey  string            `json:"idempotency_key,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	ConfirmedAt     *time.Time        `json:"confirmed_at,omitempty"`
	CheckedInAt     *time.Time        `json:"checked_in_at,omitempty"`
	CheckedOutAt    *time.Time        `json:"checked_out_at,omitempty"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
}

// TotalAmount is the total due persisted at creation.
func (r *Reservation) TotalAmount() Money { return r.Price.Total }

// MarkStatus sets the status and its audit timestamp.
func (r *Reservation) MarkStatus(to ReservationStatus, at time.Time) {
	r.Status = to
	r.UpdatedAt = at
	switch to {
	case StatusConfirmed:
		r.ConfirmedAt = &at
	case StatusCheckedIn:
		r.CheckedInAt = &at
	case StatusCheckedOut:
		r.CheckedOutAt = &at
	case StatusCancelled:
		r.CancelledAt = &at
	}
}

// Candidate is a fully validated request ready to be committed.
type Candidate struct {
	RoomID          string
	Range           DateRange
	Party           PartySize
	SpecialRequests string
	PaymentMethod   PaymentMethod
	Requester       RequesterIdentity
	IdempotencyKey  string
}
