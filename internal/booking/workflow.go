// Package booking drives the step-gated creation of a reservation.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

type Step int

const (
	StepStay Step = iota
	StepRequester
	StepPayment
)

func (s Step) Valid() bool { return s >= StepStay && s <= StepPayment }

const msgUnavailable = "room is not available for the selected dates"

var validate = validator.New()

// AvailabilityChecker is the advisory read-side check used by the stay step.
type AvailabilityChecker interface {
	IsFree(ctx context.Context, roomID string, r domain.DateRange) (bool, error)
}

// CommitFunc performs the authoritative create.
type CommitFunc func(ctx context.Context, c domain.Candidate) (*domain.Reservation, error)

// Form is the data collected across all steps.
type Form struct {
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
	BookForOther    bool
	Guest           domain.GuestProfile
	PaymentMethod   domain.PaymentMethod
	AgreeToTerms    bool
	IdempotencyKey  string
}

// Workflow is the {step, form, errors} state of one booking attempt.
type Workflow struct {
	room    *domain.Room
	account *domain.Account
	checker AvailabilityChecker

	step Step
	form Form
	errs domain.FieldErrors
}

// New starts a workflow at the stay step. account is nil for guest requesters;
// when present its profile pre-fills the requester step.
func New(room *domain.Room, account *domain.Account, checker AvailabilityChecker) *Workflow {
	w := &Workflow{
		room:    room,
		account: account,
		checker: checker,
		step:    StepStay,
		errs:    domain.FieldErrors{},
		form:    Form{Adults: 1},
	}
	if account != nil {
		w.form.Guest = domain.GuestProfile{Name: account.Name, Email: account.Email, Phone: account.Phone}
	}
	return w
}

func (w *Workflow) Step() Step                 { return w.step }
func (w *Workflow) Form() Form                 { return w.form }
func (w *Workflow) Errors() domain.FieldErrors { return w.errs }

// Fill replaces the form data. For an account requester that is not booking for
// someone else the requester fields stay sourced from the account.
func (w *Workflow) Fill(f Form) {
	if w.account != nil && !f.BookForOther {
		f.Guest = domain.GuestProfile{Name: w.account.Name, Email: w.account.Email, Phone: w.account.Phone}
	}
	w.form = f
	w.errs = domain.FieldErrors{}
}

// ChangeCheckIn moves the check-in date and shifts check-out so the number of nights
// already chosen is kept. Without a valid previous stay it defaults to one night.
func (w *Workflow) ChangeCheckIn(d time.Time) {
	nights := 1
	if !w.form.CheckIn.IsZero() && w.form.CheckOut.After(w.form.CheckIn) {
		if r, err := domain.NewDateRange(w.form.CheckIn, w.form.CheckOut); err == nil {
			nights = r.Nights()
		}
	}
	in := domain.DateOf(d)
	w.form.CheckIn = in
	w.form.CheckOut = in.AddDate(0, 0, nights)
}

// Validate checks one step without moving. An unavailable stay is reported under
// the "dates" field.
func (w *Workflow) Validate(ctx context.Context, step Step) (domain.FieldErrors, error) {
	switch step {
	case StepStay:
		errs, free, err := w.validateStay(ctx)
		if err != nil {
			return nil, err
		}
		if len(errs) == 0 && !free {
			errs.Add("dates", msgUnavailable)
		}
		return errs, nil
	case StepRequester:
		return w.validateRequester(), nil
	case StepPayment:
		return w.validatePayment(), nil
	default:
		return nil, fmt.Errorf("%w: unknown step %d", domain.ErrValidation, step)
	}
}

// Advance moves to the next step only when the current one validates.
// An occupied room fails with ErrConflict rather than a validation error.
func (w *Workflow) Advance(ctx context.Context) error {
	if w.step == StepPayment {
		return fmt.Errorf("%w: last step reached, submit instead", domain.ErrValidation)
	}

	if w.step == StepStay {
		errs, free, err := w.validateStay(ctx)
		if err != nil {
			return err
		}
		w.errs = errs
		if len(errs) > 0 {
			return domain.NewValidationError(int(w.step), errs)
		}
		if !free {
			w.errs.Add("dates", msgUnavailable)
			return fmt.Errorf("%w: %s", domain.ErrConflict, w.room.Number)
		}
		w.step++
		return nil
	}

	errs, err := w.Validate(ctx, w.step)
	if err != nil {
		return err
	}
	w.errs = errs
	if len(errs) > 0 {
		return domain.NewValidationError(int(w.step), errs)
	}
	w.step++
	return nil
}

// Back always succeeds and does not re-validate.
func (w *Workflow) Back() {
	if w.step > StepStay {
		w.step--
	}
	w.errs = domain.FieldErrors{}
}

// Submit re-validates the payment step and commits. A commit-time conflict returns
// the workflow to the stay step.
func (w *Workflow) Submit(ctx context.Context, commit CommitFunc) (*domain.Reservation, error) {
	if w.step != StepPayment {
		return nil, fmt.Errorf("%w: cannot submit from step %d", domain.ErrValidation, w.step)
	}

	errs := w.validatePayment()
	w.errs = errs
	if len(errs) > 0 {
		return nil, domain.NewValidationError(int(StepPayment), errs)
	}

	res, err := commit(ctx, w.Candidate())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			w.step = StepStay
			w.errs = domain.FieldErrors{"dates": msgUnavailable}
		}
		return nil, err
	}

	return res, nil
}

// Candidate assembles the commit request from the current form.
func (w *Workflow) Candidate() domain.Candidate {
	return domain.Candidate{
		RoomID: w.room.ID,
		Range: domain.DateRange{
			CheckIn:  domain.DateOf(w.form.CheckIn),
			CheckOut: domain.DateOf(w.form.CheckOut),
		},
		Party:           domain.PartySize{Adults: w.form.Adults, Children: w.form.Children},
		SpecialRequests: strings.TrimSpace(w.form.SpecialRequests),
		PaymentMethod:   w.form.PaymentMethod,
		Requester:       w.requester(),
		IdempotencyKey:  w.form.IdempotencyKey,
	}
}

func (w *Workflow) requester() domain.RequesterIdentity {
	if w.account != nil && !w.form.BookForOther {
		return domain.AccountRequester(w.account.ID)
	}

	bookedBy := ""
	if w.account != nil {
		bookedBy = w.account.ID
	}
	g := w.form.Guest
	return domain.GuestRequester(domain.GuestProfile{
		Name:    strings.TrimSpace(g.Name),
		Email:   strings.TrimSpace(g.Email),
		Phone:   strings.TrimSpace(g.Phone),
		Address: strings.TrimSpace(g.Address),
	}, bookedBy)
}

func (w *Workflow) validateStay(ctx context.Context) (domain.FieldErrors, bool, error) {
	errs := domain.FieldErrors{}
	f := w.form

	if f.CheckIn.IsZero() {
		errs.Add("check_in", "check-in date is required")
	}
	if f.CheckOut.IsZero() {
		errs.Add("check_out", "check-out date is required")
	}

	var stay domain.DateRange
	if len(errs) == 0 {
		r, err := domain.NewDateRange(f.CheckIn, f.CheckOut)
		if err != nil {
			errs.Add("check_out", "check-out must be at least one day after check-in")
		}
		stay = r
	}

	if f.Adults < 1 {
		errs.Add("adults", "at least one adult is required")
	}
	if f.Children < 0 {
		errs.Add("children", "children cannot be negative")
	}
	if f.Adults+f.Children > w.room.Capacity {
		errs.Add("guests", fmt.Sprintf("room %s holds at most %d guests", w.room.Number, w.room.Capacity))
	}

	if len(errs) > 0 {
		return errs, false, nil
	}

	free, err := w.checker.IsFree(ctx, w.room.ID, stay)
	if err != nil {
		return nil, false, fmt.Errorf("check availability: %w", err)
	}
	return errs, free, nil
}

func (w *Workflow) validateRequester() domain.FieldErrors {
	errs := domain.FieldErrors{}
	if w.account != nil && !w.form.BookForOther {
		return errs
	}

	g := w.form.Guest
	if strings.TrimSpace(g.Name) == "" {
		errs.Add("name", "name is required")
	}

	email := strings.TrimSpace(g.Email)
	if email == "" {
		errs.Add("email", "email is required")
	} else if err := validate.Var(email, "email"); err != nil {
		errs.Add("email", "email is not valid")
	}

	if strings.TrimSpace(g.Phone) == "" {
		errs.Add("phone", "phone is required")
	} else if !domain.ValidPhone(g.Phone) {
		errs.Add("phone", "phone must have 10 to 15 digits")
	}

	return errs
}

func (w *Workflow) validatePayment() domain.FieldErrors {
	errs := domain.FieldErrors{}
	if w.form.PaymentMethod == "" {
		errs.Add("payment_method", "payment method is required")
	} else if !w.form.PaymentMethod.Valid() {
		errs.Add("payment_method", "unknown payment method")
	}
	if !w.form.AgreeToTerms {
		errs.Add("agree_to_terms", "terms must be accepted")
	}
	return errs
}
