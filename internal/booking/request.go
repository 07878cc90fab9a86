package booking

// Request is a complete booking attempt as submitted by a client.
// AccountID is empty for guest requesters.
type Request struct {
	RoomID    string
	AccountID string
	Form      Form
}
