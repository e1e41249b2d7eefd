package models

// Session is the locally held record of the currently authenticated user.
// At most one Session exists at a time; it is created on a successful sign-in
// or account creation and cleared on sign-out.
type Session struct {
	// UserID is the provider-assigned identifier of the authenticated user.
	UserID string

	// Email is the address the session was established with.
	Email string
}
