package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/quytai0402/KhachSan-sub000/internal/booking"
	"github.com/quytai0402/KhachSan-sub000/internal/domain"
	"github.com/quytai0402/KhachSan-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const idempotencyHeader = "Idempotency-Key"

type ReservationSvc interface {
	Create(ctx context.Context, req booking.Request) (*domain.Reservation, error)
	ValidateStep(ctx context.Context, req booking.Request, step booking.Step) (domain.FieldErrors, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	ListForRoom(ctx context.Context, roomID string, window *domain.DateRange) ([]*domain.Reservation, error)
	Transition(ctx context.Context, id string, target domain.ReservationStatus) (*domain.Reservation, error)
	UpdateNotes(ctx context.Context, id, notes string) (*domain.Reservation, error)
}

type AvailabilitySvc interface {
	IsFree(ctx context.Context, roomID string, r domain.DateRange) (bool, error)
	BlockedDates(ctx context.Context, roomID string, horizon domain.DateRange) ([]time.Time, error)
	Quote(ctx context.Context, roomID string, r domain.DateRange) (*domain.PriceBreakdown, error)
}

type GuestSvc interface {
	ListByPhone(ctx context.Context, phone string) ([]*domain.Reservation, error)
	Autofill(ctx context.Context, phone string) (*domain.GuestProfile, error)
}

type Handler struct {
	reservationService  ReservationSvc
	availabilityService AvailabilitySvc
	guestService        GuestSvc
}

func NewHandler(reservationService ReservationSvc, availabilityService AvailabilitySvc, guestService GuestSvc) *Handler {
	return &Handler{
		reservationService:  reservationService,
		availabilityService: availabilityService,
		guestService:        guestService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var body dto.ReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})
		return
	}

	req, fieldErrs := body.ToBooking()
	if len(fieldErrs) > 0 {
		h.handleError(c, domain.NewValidationError(int(booking.StepStay), fieldErrs))
		return
	}
	req.Form.IdempotencyKey = c.GetHeader(idempotencyHeader)

	res, err := h.reservationService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ValidateStep(c *ginext.Context) {
	n, err := strconv.Atoi(c.Param("step"))
	step := booking.Step(n)
	if err != nil || !step.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid step", Code: dto.CodeValidation})
		return
	}

	var body dto.ReservationRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})
		return
	}

	req, fieldErrs := body.ToBooking()
	if step == booking.StepStay && len(fieldErrs) > 0 {
		c.JSON(http.StatusOK, dto.StepValidationResponse{Step: n, Valid: false, Errors: fieldErrs})
		return
	}

	errs, err := h.reservationService.ValidateStep(c.Request.Context(), req, step)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if errs == nil {
		errs = domain.FieldErrors{}
	}

	c.JSON(http.StatusOK, dto.StepValidationResponse{Step: n, Valid: len(errs) == 0, Errors: errs})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	res, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) TransitionStatus(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var body dto.StatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})
		return
	}

	res, err := h.reservationService.Transition(c.Request.Context(), id, domain.ReservationStatus(body.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) UpdateNotes(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var body dto.NotesRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})
		return
	}

	res, err := h.reservationService.UpdateNotes(c.Request.Context(), id, *body.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// Rooms

func (h *Handler) ListRoomReservations(c *ginext.Context) {
	roomID := c.Param("id")

	var window *domain.DateRange
	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		r, err := domain.ParseDateRange(from, to)
		if err != nil {
			h.handleError(c, err)
			return
		}
		window = &r
	}

	list, err := h.reservationService.ListForRoom(c.Request.Context(), roomID, window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationList(list))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	roomID := c.Param("id")

	stay, err := domain.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	free, err := h.availabilityService.IsFree(c.Request.Context(), roomID, stay)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   stay.CheckIn.Format(domain.DateLayout),
		CheckOut:  stay.CheckOut.Format(domain.DateLayout),
		Available: free,
	})
}

func (h *Handler) BlockedDates(c *ginext.Context) {
	roomID := c.Param("id")

	horizon, err := domain.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	dates, err := h.availabilityService.BlockedDates(c.Request.Context(), roomID, horizon)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlockedDatesResponse{
		RoomID: roomID,
		From:   horizon.CheckIn.Format(domain.DateLayout),
		To:     horizon.CheckOut.Format(domain.DateLayout),
		Dates:  dto.FormatDates(dates),
	})
}

func (h *Handler) Quote(c *ginext.Context) {
	roomID := c.Param("id")

	stay, err := domain.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	price, err := h.availabilityService.Quote(c.Request.Context(), roomID, stay)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceResponse(*price))
}

// Guests

func (h *Handler) GuestReservations(c *ginext.Context) {
	list, err := h.guestService.ListByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationList(list))
}

func (h *Handler) GuestAutofill(c *ginext.Context) {
	profile, err := h.guestService.Autofill(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(profile))
}

func reservationID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id", Code: dto.CodeValidation})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var (
		verr *domain.ValidationError
		terr *domain.InvalidTransitionError
	)

	switch {
	case errors.As(err, &verr):
		step := verr.Step
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  err.Error(),
			Code:   dto.CodeValidation,
			Step:   &step,
			Fields: verr.Fields,
		})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeValidation})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeNotFound})

	case errors.As(err, &terr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeInvalidTransition})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrLockTimeout),
		errors.Is(err, domain.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: dto.CodeConflict})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
