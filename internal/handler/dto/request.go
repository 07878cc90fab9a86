package dto

import (
	"time"

	"github.com/quytai0402/KhachSan-sub000/internal/booking"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

type GuestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ReservationRequest carries the whole workflow form. Field rules are checked by the
// workflow so that every step reports its own errors.
type ReservationRequest struct {
	RoomID          string        `json:"room_id" binding:"required"`
	AccountID       string        `json:"account_id"`
	CheckIn         string        `json:"check_in"`
	CheckOut        string        `json:"check_out"`
	Adults          *int          `json:"adults"`
	Children        int           `json:"children"`
	SpecialRequests string        `json:"special_requests"`
	BookForOther    bool          `json:"book_for_other"`
	Guest           *GuestRequest `json:"guest"`
	PaymentMethod   string        `json:"payment_method"`
	AgreeToTerms    bool          `json:"agree_to_terms"`
}

// ToBooking converts the body into a workflow request. Malformed dates are reported
// as field errors.
func (r ReservationRequest) ToBooking() (booking.Request, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	form := booking.Form{
		CheckIn:         parseOptionalDate(r.CheckIn, "check_in", errs),
		CheckOut:        parseOptionalDate(r.CheckOut, "check_out", errs),
		Adults:          1,
		Children:        r.Children,
		SpecialRequests: r.SpecialRequests,
		BookForOther:    r.BookForOther,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		AgreeToTerms:    r.AgreeToTerms,
	}
	if r.Adults != nil {
		form.Adults = *r.Adults
	}
	if r.Guest != nil {
		form.Guest = domain.GuestProfile{
			Name:    r.Guest.Name,
			Email:   r.Guest.Email,
			Phone:   r.Guest.Phone,
			Address: r.Guest.Address,
		}
	}

	return booking.Request{RoomID: r.RoomID, AccountID: r.AccountID, Form: form}, errs
}

func parseOptionalDate(s, field string, errs domain.FieldErrors) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		errs.Add(field, "expected a YYYY-MM-DD date")
		return time.Time{}
	}
	return d
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type NotesRequest struct {
	Notes *string `json:"notes" binding:"required"`
}
