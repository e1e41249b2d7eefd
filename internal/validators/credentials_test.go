package validators

import (
	"sync"
	"testing"

	"github.com/jfarabee/signon/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name  string
		email string
		want  models.ValidationResult
	}{
		{name: "simple address", email: "a@b.com", want: models.Valid},
		{name: "dotted local part", email: "first.last@example.com", want: models.Valid},
		{name: "plus tag", email: "user+tag@example.co.uk", want: models.Valid},
		{name: "hyphenated domain label", email: "a@my-host.com", want: models.Valid},
		{name: "double at sign", email: "a@@b.com", want: models.InvalidEmailFormat},
		{name: "no at sign", email: "noatsign.com", want: models.InvalidEmailFormat},
		{name: "empty", email: "", want: models.InvalidEmailFormat},
		{name: "missing domain dot", email: "a@localhost", want: models.InvalidEmailFormat},
		{name: "leading hyphen in label", email: "a@-bad.com", want: models.InvalidEmailFormat},
		{name: "trailing hyphen in label", email: "a@bad-.com", want: models.InvalidEmailFormat},
		{name: "trailing junk", email: "a@b.com extra", want: models.InvalidEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidateEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name     string
		password string
		want     models.ValidationResult
	}{
		{name: "six alphanumerics", password: "abc123", want: models.Valid},
		{name: "allowed symbol", password: "abc12!", want: models.Valid},
		{name: "all symbols", password: "~`!@#$%^&*()", want: models.Valid},
		{name: "brackets and quotes", password: `[]{}"':;`, want: models.Valid},
		{name: "too short", password: "ab1", want: models.InvalidPasswordFormat},
		{name: "five characters", password: "abc12", want: models.InvalidPasswordFormat},
		{name: "empty", password: "", want: models.InvalidPasswordFormat},
		{name: "space is not allowed", password: "abc 123", want: models.InvalidPasswordFormat},
		{name: "backslash is not allowed", password: `abc12\`, want: models.InvalidPasswordFormat},
		{name: "disallowed char in the middle", password: "abcé123", want: models.InvalidPasswordFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidatePassword(tt.password))
		})
	}
}

func TestValidateConfirmation(t *testing.T) {
	v := NewCredentialValidator()

	assert.Equal(t, models.Valid, v.ValidateConfirmation("abc123", "abc123"))
	assert.Equal(t, models.PasswordMismatch, v.ValidateConfirmation("abc123", "abc124"))
	assert.Equal(t, models.PasswordMismatch, v.ValidateConfirmation("abc123", "ABC123"))
}

func TestValidate_CheckOrdering(t *testing.T) {
	v := NewCredentialValidator()

	// Every rule fails: email format wins.
	got := v.Validate(models.Credentials{Email: "bad", Password: "x", PasswordConfirmation: "y"})
	assert.Equal(t, models.InvalidEmailFormat, got)

	// Email ok, password and confirmation fail: password format wins.
	got = v.Validate(models.Credentials{Email: "a@b.com", Password: "x", PasswordConfirmation: "y"})
	assert.Equal(t, models.InvalidPasswordFormat, got)

	// Only the confirmation fails.
	got = v.Validate(models.Credentials{Email: "a@b.com", Password: "abc123", PasswordConfirmation: "abc124"})
	assert.Equal(t, models.PasswordMismatch, got)

	// Login-shaped submission: no confirmation, no mismatch check.
	got = v.Validate(models.Credentials{Email: "a@b.com", Password: "abc123"})
	assert.Equal(t, models.Valid, got)
}

// Validate is a pure function: repeated and concurrent calls over the same
// input always produce the same classification.
func TestValidate_PureAndConcurrencySafe(t *testing.T) {
	v := NewCredentialValidator()
	creds := models.Credentials{Email: "a@b.com", Password: "abc123", PasswordConfirmation: "abc123"}

	first := v.Validate(creds)
	assert.Equal(t, first, v.Validate(creds))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := v.Validate(creds); got != first {
				t.Errorf("concurrent Validate returned %v, want %v", got, first)
			}
		}()
	}
	wg.Wait()
}
