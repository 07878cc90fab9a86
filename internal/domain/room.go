package domain

// Money is an amount in the currency's minor unit.
type Money int64

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusBooked      RoomStatus = "booked"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
)

// RoomType is resolved once at the catalog boundary.
type RoomType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Known room type identifiers.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTwin   = "twin"
	RoomTypeSuite  = "suite"
	RoomTypeFamily = "family"
	RoomTypeDeluxe = "deluxe"
)

// Room is owned by the catalog; the engine only reads rate and capacity.
// Status is informational and never consulted for availability.
type Room struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Type        RoomType   `json:"type"`
	NightlyRate Money      `json:"nightly_rate"`
	Capacity    int        `json:"capacity"`
	Floor       int        `json:"floor"`
	Status      RoomStatus `json:"status"`
}
