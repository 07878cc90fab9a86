package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	ValidateStep(c *ginext.Context)
	GetReservation(c *ginext.Context)
	TransitionStatus(c *ginext.Context)
	UpdateNotes(c *ginext.Context)
	ListRoomReservations(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	BlockedDates(c *ginext.Context)
	Quote(c *ginext.Context)
	GuestReservations(c *ginext.Context)
	GuestAutofill(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.POST("/reservations/steps/:step/validate", h.ValidateStep)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/status", h.TransitionStatus)
		api.PATCH("/reservations/:id/notes", h.UpdateNotes)

		// Rooms
		api.GET("/rooms/:id/reservations", h.ListRoomReservations)
		api.GET("/rooms/:id/availability", h.CheckAvailability)
		api.GET("/rooms/:id/blocked-dates", h.BlockedDates)
		api.GET("/rooms/:id/quote", h.Quote)

		// Guests
		api.GET("/guests/:phone/reservations", h.GuestReservations)
		api.GET("/guests/:phone/autofill", h.GuestAutofill)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
