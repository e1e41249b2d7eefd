package models

// Credentials holds the raw field values of a submitted login or signup form.
// The value lives for exactly one submission: it is produced when the user
// confirms the form, consumed once by validation/dispatch, and discarded.
type Credentials struct {
	// Email is the address the user typed into the username field.
	Email string `json:"email"`

	// Password is the plaintext password as typed. It is sent to the
	// identity provider over the transport layer and never persisted.
	Password string `json:"password"`

	// PasswordConfirmation is the repeated password on the signup form.
	// Empty on login submissions. Never leaves the process.
	PasswordConfirmation string `json:"-"`
}

// ValidationResult classifies the outcome of a credential format check.
type ValidationResult int

const (
	// Valid means every requested rule passed.
	Valid ValidationResult = iota

	// InvalidEmailFormat means the email field does not fully match the
	// single-address email pattern.
	InvalidEmailFormat

	// InvalidPasswordFormat means the password is shorter than six
	// characters or contains a character outside the allow-list.
	InvalidPasswordFormat

	// PasswordMismatch means password and confirmation differ.
	PasswordMismatch
)

// String returns a short machine-readable label, used in diagnostics.
func (r ValidationResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case InvalidEmailFormat:
		return "invalid_email_format"
	case InvalidPasswordFormat:
		return "invalid_password_format"
	case PasswordMismatch:
		return "password_mismatch"
	default:
		return "unknown"
	}
}
