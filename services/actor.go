package services

// Actor is the identity a request acts under, taken from the session token.
type Actor struct {
	UserID  uint
	Role    string
	Country string
}

// Privileged reports whether the actor may operate across every
// customer's cart (aggregate view, cross-cart edits, selective checkout).
func (a Actor) Privileged() bool {
	return a.Role == "admin" || a.Role == "manager"
}
