// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package tui

import (
	"testing"

	"github.com/jfarabee/signon/internal/service"
	"github.com/jfarabee/signon/models"
	"github.com/stretchr/testify/assert"
)

func TestViewState_StartsOnLogin(t *testing.T) {
	s := NewViewState()
	assert.Equal(t, ViewLogin, s.Active)
	assert.Empty(t, s.LoginError)
	assert.Empty(t, s.AccountInfo)
}

func TestViewState_Navigation(t *testing.T) {
	s := NewViewState()

	s = s.ShowSignup()
	assert.Equal(t, ViewCreateAccount, s.Active)

	// ShowSignup only applies from the login view.
	assert.Equal(t, ViewCreateAccount, s.ShowSignup().Active)

	s = s.ShowLogin()
	assert.Equal(t, ViewLogin, s.Active)
}

func TestViewState_SlotUpdatesDoNotChangeActiveView(t *testing.T) {
	s := NewViewState()

	s = s.Apply(service.SlotUpdated{Slot: service.SlotLoginError, Text: "Logging in..."})
	assert.Equal(t, ViewLogin, s.Active)
	assert.Equal(t, "Logging in...", s.LoginError)

	s = s.Apply(service.SlotUpdated{Slot: service.SlotLoginError})
	assert.Empty(t, s.LoginError)

	s = s.Apply(service.SlotUpdated{Slot: service.SlotSignupError, Text: "Entered passwords do not match."})
	assert.Equal(t, ViewLogin, s.Active)
	assert.Equal(t, "Entered passwords do not match.", s.SignupError)
}

func TestViewState_LoggedInActivatesAccountViewer(t *testing.T) {
	s := NewViewState()

	s = s.Apply(service.LoggedIn{Session: models.Session{UserID: "user-1", Email: "a@b.com"}})

	assert.Equal(t, ViewAccountViewer, s.Active)
	assert.Equal(t, "Username / Email: a@b.com\nUserId: user-1\nLogged in? true", s.AccountInfo)
}

func TestViewState_AccountCreatedActivatesAccountViewer(t *testing.T) {
	s := NewViewState().ShowSignup()

	s = s.Apply(service.AccountCreated{Session: models.Session{UserID: "user-9", Email: "new@b.com"}})

	assert.Equal(t, ViewAccountViewer, s.Active)
	assert.Contains(t, s.AccountInfo, "new@b.com")
	assert.Contains(t, s.AccountInfo, "user-9")
}

func TestViewState_LoggedOutReturnsToLogin(t *testing.T) {
	s := NewViewState()
	s = s.Apply(service.LoggedIn{Session: models.Session{UserID: "user-1", Email: "a@b.com"}})

	s = s.Apply(service.SlotUpdated{Slot: service.SlotAccountInfo})
	s = s.Apply(service.LoggedOut{})

	assert.Equal(t, ViewLogin, s.Active)
	assert.Empty(t, s.AccountInfo)
}

// The single Active field means exactly one view is ever active; this walks
// every event type and checks the value stays within the enum.
func TestViewState_ExactlyOneActiveView(t *testing.T) {
	s := NewViewState()
	events := []service.Event{
		service.SlotUpdated{Slot: service.SlotLoginError, Text: "x"},
		service.LoggedIn{Session: models.Session{UserID: "u", Email: "e"}},
		service.SlotUpdated{Slot: service.SlotAccountInfo, Text: "y"},
		service.LoggedOut{},
		service.AccountCreated{Session: models.Session{UserID: "u2", Email: "e2"}},
	}

	for _, ev := range events {
		s = s.Apply(ev)
		assert.Contains(t, []View{ViewLogin, ViewCreateAccount, ViewAccountViewer}, s.Active)
	}
}
