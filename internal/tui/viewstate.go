// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package tui

import (
	"fmt"

	"github.com/jfarabee/signon/internal/service"
	"github.com/jfarabee/signon/models"
)

// View identifies the active screen. Exactly one view is active at a time;
// the single Active field on ViewState makes that true by construction.
type View int

const (
	ViewLogin View = iota
	ViewCreateAccount
	ViewAccountViewer
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewCreateAccount:
		return "create_account"
	case ViewAccountViewer:
		return "account_viewer"
	default:
		return "unknown"
	}
}

// ViewState is a pure projection of coordinator events plus the two local
// navigation actions onto screen-active and text-slot state. It performs no
// validation and makes no provider calls.
type ViewState struct {
	Active      View
	LoginError  string
	SignupError string
	AccountInfo string
}

func NewViewState() ViewState {
	return ViewState{Active: ViewLogin}
}

// Apply folds one coordinator event into the state. Terminal events switch
// the active view; slot updates only touch text.
func (s ViewState) Apply(ev service.Event) ViewState {
	switch ev := ev.(type) {
	case service.SlotUpdated:
		switch ev.Slot {
		case service.SlotLoginError:
			s.LoginError = ev.Text
		case service.SlotSignupError:
			s.SignupError = ev.Text
		case service.SlotAccountInfo:
			s.AccountInfo = ev.Text
		}
	case service.LoggedIn:
		s.Active = ViewAccountViewer
		s.AccountInfo = accountInfoText(ev.Session)
	case service.AccountCreated:
		s.Active = ViewAccountViewer
		s.AccountInfo = accountInfoText(ev.Session)
	case service.LoggedOut:
		s.Active = ViewLogin
	}
	return s
}

// ShowSignup navigates Login → CreateAccount. A no-op from any other view.
func (s ViewState) ShowSignup() ViewState {
	if s.Active == ViewLogin {
		s.Active = ViewCreateAccount
		s.SignupError = ""
	}
	return s
}

// ShowLogin is the back navigation: any view returns to Login.
func (s ViewState) ShowLogin() ViewState {
	s.Active = ViewLogin
	s.LoginError = ""
	return s
}

func accountInfoText(sess models.Session) string {
	return fmt.Sprintf("Username / Email: %s\nUserId: %s\nLogged in? true", sess.Email, sess.UserID)
}
