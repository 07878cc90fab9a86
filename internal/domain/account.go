package domain

// Account is the profile of a registered requester as returned by the identity lookup.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
