// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

// Package validators provides synchronous format validation for submitted
// credentials, decoupled from the transport and view layers.
//
// All checks are pure functions over strings: no I/O, no state, safe for
// concurrent use. A check either passes or yields a single
// [models.ValidationResult] classification that the caller maps to a
// user-facing label.
package validators

import (
	"regexp"

	"github.com/jfarabee/signon/models"
)

// emailPattern accepts a single RFC-5322-shaped address: dot-separated
// local-part atoms followed by a domain of alphanumeric-hyphen labels with no
// leading or trailing hyphen per label. Full-string match.
const emailPattern = "^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	"@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$"

// passwordPattern accepts six or more characters drawn from the alphanumeric
// range plus a fixed punctuation allow-list. Full-string match: one character
// outside the set fails the whole check.
const passwordPattern = "^[a-zA-Z0-9~`!@#$%^&*()_+=|}\\]{\\[\"':;?/><,.-]{6,}$"

var (
	emailRegex    = regexp.MustCompile(emailPattern)
	passwordRegex = regexp.MustCompile(passwordPattern)
)

// CredentialValidator validates raw credential strings against format rules.
// Implementations must be deterministic and safe to call concurrently.
type CredentialValidator interface {
	// ValidateEmail checks the email field alone.
	// Returns Valid or InvalidEmailFormat.
	ValidateEmail(email string) models.ValidationResult

	// ValidatePassword checks the password field alone.
	// Returns Valid or InvalidPasswordFormat.
	ValidatePassword(password string) models.ValidationResult

	// ValidateConfirmation checks exact string equality between password
	// and confirmation. Returns Valid or PasswordMismatch.
	ValidateConfirmation(password, confirmation string) models.ValidationResult

	// Validate runs every rule applicable to creds and returns the first
	// failing classification, checking email format before password format
	// before confirmation equality. The confirmation rule only applies
	// when creds.PasswordConfirmation is non-empty.
	Validate(creds models.Credentials) models.ValidationResult
}

type credentialValidator struct{}

// NewCredentialValidator constructs the regex-backed CredentialValidator.
func NewCredentialValidator() CredentialValidator {
	return &credentialValidator{}
}

func (v *credentialValidator) ValidateEmail(email string) models.ValidationResult {
	if !emailRegex.MatchString(email) {
		return models.InvalidEmailFormat
	}
	return models.Valid
}

func (v *credentialValidator) ValidatePassword(password string) models.ValidationResult {
	if !passwordRegex.MatchString(password) {
		return models.InvalidPasswordFormat
	}
	return models.Valid
}

func (v *credentialValidator) ValidateConfirmation(password, confirmation string) models.ValidationResult {
	if password != confirmation {
		return models.PasswordMismatch
	}
	return models.Valid
}

func (v *credentialValidator) Validate(creds models.Credentials) models.ValidationResult {
	if result := v.ValidateEmail(creds.Email); result != models.Valid {
		return result
	}
	if result := v.ValidatePassword(creds.Password); result != models.Valid {
		return result
	}
	if creds.PasswordConfirmation != "" {
		return v.ValidateConfirmation(creds.Password, creds.PasswordConfirmation)
	}
	return models.Valid
}
