package dto

import (
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

const (
	CodeValidation        = "validation"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeInvalidTransition = "invalid_transition"
)

type PriceResponse struct {
	Nights        int   `json:"nights"`
	NightlyRate   int64 `json:"nightly_rate"`
	Subtotal      int64 `json:"subtotal"`
	Tax           int64 `json:"tax"`
	ServiceCharge int64 `json:"service_charge"`
	Total         int64 `json:"total"`
}

type RequesterResponse struct {
	Kind      string        `json:"kind"`
	AccountID string        `json:"account_id,omitempty"`
	Guest     *GuestRequest `json:"guest,omitempty"`
	BookedBy  string        `json:"booked_by,omitempty"`
}

type ReservationResponse struct {
	ID              string            `json:"id"`
	RoomID          string            `json:"room_id"`
	CheckIn         string            `json:"check_in"`
	CheckOut        string            `json:"check_out"`
	Nights          int               `json:"nights"`
	Adults          int               `json:"adults"`
	Children        int               `json:"children"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	PaymentMethod   string            `json:"payment_method"`
	Price           PriceResponse     `json:"price"`
	Status          string            `json:"status"`
	Requester       RequesterResponse `json:"requester"`
	StaffNotes      string            `json:"staff_notes,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
	ConfirmedAt     string            `json:"confirmed_at,omitempty"`
	CheckedInAt     string            `json:"checked_in_at,omitempty"`
	CheckedOutAt    string            `json:"checked_out_at,omitempty"`
	CancelledAt     string            `json:"cancelled_at,omitempty"`
}

type StepValidationResponse struct {
	Step   int               `json:"step"`
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type BlockedDatesResponse struct {
	RoomID string   `json:"room_id"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Dates  []string `json:"dates"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Step   *int              `json:"step,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToPriceResponse(p domain.PriceBreakdown) PriceResponse {
	return PriceResponse{
		Nights:        p.Nights,
		NightlyRate:   int64(p.NightlyRate),
		Subtotal:      int64(p.Subtotal),
		Tax:           int64(p.Tax),
		ServiceCharge: int64(p.ServiceCharge),
		Total:         int64(p.Total),
	}
}

func ToGuestResponse(g *domain.GuestProfile) *GuestRequest {
	if g == nil {
		return nil
	}
	return &GuestRequest{Name: g.Name, Email: g.Email, Phone: g.Phone, Address: g.Address}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		RoomID:          r.RoomID,
		CheckIn:         r.Range.CheckIn.Format(domain.DateLayout),
		CheckOut:        r.Range.CheckOut.Format(domain.DateLayout),
		Nights:          r.Range.Nights(),
		Adults:          r.Party.Adults,
		Children:        r.Party.Children,
		SpecialRequests: r.SpecialRequests,
		PaymentMethod:   string(r.PaymentMethod),
		Price:           ToPriceResponse(r.Price),
		Status:          string(r.Status),
		Requester: RequesterResponse{
			Kind:      string(r.Requester.Kind),
			AccountID: r.Requester.AccountID,
			Guest:     ToGuestResponse(r.Requester.Guest),
			BookedBy:  r.Requester.BookedBy,
		},
		StaffNotes:   r.StaffNotes,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
		ConfirmedAt:  formatOptional(r.ConfirmedAt),
		CheckedInAt:  formatOptional(r.CheckedInAt),
		CheckedOutAt: formatOptional(r.CheckedOutAt),
		CancelledAt:  formatOptional(r.CancelledAt),
	}
}

func ToReservationList(list []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}

func FormatDates(ds []time.Time) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Format(domain.DateLayout))
	}
	return out
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
