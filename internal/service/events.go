// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

// Package service contains the authentication flow coordinator: the layer
// between the view and the provider transport.
//
// The coordinator validates submitted credentials, dispatches provider calls
// off the caller's goroutine, and publishes the results as [Event] values on
// a channel the view layer drains. All user-visible text travels through
// [SlotUpdated] events keyed by [TextSlot], so the view never interprets
// provider errors itself.
package service

import "github.com/jfarabee/signon/models"

// TextSlot names a view-owned text region the coordinator writes into.
type TextSlot int

const (
	// SlotLoginError is the status line under the login form.
	SlotLoginError TextSlot = iota

	// SlotSignupError is the status line under the account-creation form.
	SlotSignupError

	// SlotAccountInfo is the body of the account viewer.
	SlotAccountInfo
)

func (s TextSlot) String() string {
	switch s {
	case SlotLoginError:
		return "login_error"
	case SlotSignupError:
		return "signup_error"
	case SlotAccountInfo:
		return "account_info"
	default:
		return "unknown"
	}
}

// Event is a notification published by the coordinator. The view layer
// switches on the concrete type.
type Event interface {
	isEvent()
}

// SlotUpdated carries new text for one view slot. An empty Text clears the
// slot.
type SlotUpdated struct {
	Slot TextSlot
	Text string
}

// LoggedIn reports a successful sign-in. Exactly one LoggedIn is published
// per successful login submission.
type LoggedIn struct {
	Session models.Session
}

// AccountCreated reports a successful account creation. The new account is
// signed in as part of the same operation.
type AccountCreated struct {
	Session models.Session
}

// LoggedOut reports that the session was cleared.
type LoggedOut struct{}

func (SlotUpdated) isEvent()    {}
func (LoggedIn) isEvent()       {}
func (AccountCreated) isEvent() {}
func (LoggedOut) isEvent()      {}
