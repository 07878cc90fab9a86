package domain

import (
	"strings"
	"unicode"
)

type RequesterKind string

const (
	RequesterAccount RequesterKind = "account"
	RequesterGuest   RequesterKind = "guest"
)

// GuestProfile identifies a requester without an account.
type GuestProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// RequesterIdentity is Account(AccountID) or Guest(Guest).
// BookedBy records the authenticated account that booked on behalf of a guest.
type RequesterIdentity struct {
	Kind      RequesterKind `json:"kind"`
	AccountID string        `json:"account_id,omitempty"`
	Guest     *GuestProfile `json:"guest,omitempty"`
	BookedBy  string        `json:"booked_by,omitempty"`
}

func AccountRequester(accountID string) RequesterIdentity {
	return RequesterIdentity{Kind: RequesterAccount, AccountID: accountID}
}

func GuestRequester(p GuestProfile, bookedBy string) RequesterIdentity {
	return RequesterIdentity{Kind: RequesterGuest, Guest: &p, BookedBy: bookedBy}
}

func (r RequesterIdentity) IsGuest() bool {
	return r.Kind == RequesterGuest && r.Guest != nil
}

// Phone returns the guest phone, or "" for account requesters.
func (r RequesterIdentity) Phone() string {
	if !r.IsGuest() {
		return ""
	}
	return r.Guest.Phone
}

// NormalizePhone strips whitespace and separators so that "090-123-4567" and
// "0901234567" compare equal. A leading '+' is kept.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	b.Grow(len(phone))
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone accepts 10 to 15 digits with optional spaces, dashes, dots, parentheses
// and a leading '+'.
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}
