package models

// OutcomeKind is the three-way classification of a completed provider call.
type OutcomeKind int

const (
	// OutcomeSuccess means the provider accepted the request and returned
	// an authenticated user.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeCanceled means the request was abandoned before the provider
	// produced a result (context cancellation).
	OutcomeCanceled

	// OutcomeFaulted means the provider rejected the request or the
	// transport failed.
	OutcomeFaulted
)

// String returns a short label used in diagnostics.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// AuthOutcome is the terminal result of one sign-in or account-creation
// request. Exactly one AuthOutcome is produced per dispatched request; it is
// never retried automatically.
type AuthOutcome struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind OutcomeKind

	// UserID is the provider-assigned user identifier. Set on success only.
	UserID string

	// Email is the authenticated address. Set on success only.
	Email string

	// Diagnostic carries the raw transport or provider error text for
	// canceled and faulted outcomes. It is written to the log and never
	// shown to the user.
	Diagnostic string
}

// SuccessOutcome builds a successful AuthOutcome for the given user.
func SuccessOutcome(userID, email string) AuthOutcome {
	return AuthOutcome{Kind: OutcomeSuccess, UserID: userID, Email: email}
}

// CanceledOutcome builds a canceled AuthOutcome carrying the raw reason.
func CanceledOutcome(diagnostic string) AuthOutcome {
	return AuthOutcome{Kind: OutcomeCanceled, Diagnostic: diagnostic}
}

// FaultedOutcome builds a faulted AuthOutcome carrying the raw provider error.
func FaultedOutcome(diagnostic string) AuthOutcome {
	return AuthOutcome{Kind: OutcomeFaulted, Diagnostic: diagnostic}
}
