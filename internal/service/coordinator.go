// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jfarabee/signon/internal/adapter"
	"github.com/jfarabee/signon/internal/app"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/internal/validators"
	"github.com/jfarabee/signon/models"
)

// eventBuffer sizes the coordinator's event channel. The view layer drains
// continuously, so the buffer only absorbs short bursts around completions.
const eventBuffer = 16

// Coordinator orchestrates the authentication flow: synchronous credential
// validation, asynchronous provider dispatch, and session ownership.
//
// All methods are safe for concurrent use. Session and the in-flight flag are
// written under a single mutex because provider completions arrive from a
// goroutine outside the caller's stack. Per request the event order is always
// validation labels, then the status label, then exactly one terminal result.
type Coordinator struct {
	adapter   adapter.ProviderAdapter
	validator validators.CredentialValidator
	log       *logger.Logger

	events chan Event
	ready  atomic.Bool

	mu       sync.Mutex
	session  *models.Session
	inflight bool
}

func NewCoordinator(providerAdapter adapter.ProviderAdapter, validator validators.CredentialValidator, log *logger.Logger) *Coordinator {
	return &Coordinator{
		adapter:   providerAdapter,
		validator: validator,
		log:       log,
		events:    make(chan Event, eventBuffer),
	}
}

// Events returns the channel the coordinator publishes on. The view layer
// owns draining it.
func (c *Coordinator) Events() <-chan Event {
	return c.events
}

// MarkReady opens the readiness gate. Until it is called every submission is
// rejected with the not-ready label and no provider call is made.
func (c *Coordinator) MarkReady() {
	if c.ready.CompareAndSwap(false, true) {
		c.log.Info().Msg("provider readiness gate opened")
	}
}

// Ready reports whether the readiness gate has opened.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Session returns a copy of the current session, if one exists.
func (c *Coordinator) Session() (models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return models.Session{}, false
	}
	return *c.session, true
}

// Login validates the submitted credentials and, if they pass, dispatches an
// asynchronous sign-in. Rejections are synchronous: the method emits the
// corresponding label and returns without touching the provider.
func (c *Coordinator) Login(ctx context.Context, email, password string) {
	c.emit(SlotUpdated{Slot: SlotLoginError})

	if !c.ready.Load() {
		c.emit(SlotUpdated{Slot: SlotLoginError, Text: app.MsgProviderNotReady})
		return
	}
	if c.validator.ValidateEmail(email) != models.Valid {
		c.emit(SlotUpdated{Slot: SlotLoginError, Text: app.MsgInvalidEmail})
		return
	}
	if c.validator.ValidatePassword(password) != models.Valid {
		c.emit(SlotUpdated{Slot: SlotLoginError, Text: app.MsgInvalidLoginPassword})
		return
	}
	if !c.beginRequest() {
		c.emit(SlotUpdated{Slot: SlotLoginError, Text: app.MsgRequestInFlight})
		return
	}

	c.emit(SlotUpdated{Slot: SlotLoginError, Text: app.MsgLoggingIn})

	requestID := uuid.NewString()
	c.log.Debug().Str("request_id", requestID).Str("op", "signin").Str("email", email).Msg("dispatching provider call")

	go func() {
		outcome := c.adapter.SignIn(ctx, models.Credentials{Email: email, Password: password})
		c.completeLogin(requestID, outcome)
	}()
}

// CreateAccount validates the submitted credentials and, if the format checks
// pass, dispatches an asynchronous account creation.
//
// A password/confirmation mismatch emits its label but does not stop the
// flow: a mismatched submission whose email and password are format-valid
// still dispatches. This mirrors the historical behaviour of the flow and is
// deliberate; callers that want a hard stop must check the confirmation
// themselves before submitting.
func (c *Coordinator) CreateAccount(ctx context.Context, email, password, confirmation string) {
	c.emit(SlotUpdated{Slot: SlotSignupError})

	if c.validator.ValidateConfirmation(password, confirmation) != models.Valid {
		c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgPasswordsDoNotMatch})
	}
	if c.validator.ValidateEmail(email) != models.Valid {
		c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgInvalidEmail})
		return
	}
	if c.validator.ValidatePassword(password) != models.Valid {
		c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgInvalidSignupPassword})
		return
	}
	if !c.ready.Load() {
		c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgProviderNotReady})
		return
	}
	if !c.beginRequest() {
		c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgRequestInFlight})
		return
	}

	c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgCreatingAccount})

	requestID := uuid.NewString()
	c.log.Debug().Str("request_id", requestID).Str("op", "signup").Str("email", email).Msg("dispatching provider call")

	go func() {
		outcome := c.adapter.CreateAccount(ctx, models.Credentials{Email: email, Password: password})
		c.completeSignup(requestID, outcome)
	}()
}

// LogOut clears the session, tells the provider fire-and-forget, and emits
// exactly one LoggedOut event. It succeeds even when no session exists.
func (c *Coordinator) LogOut(ctx context.Context) {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	go func() {
		if err := c.adapter.SignOut(ctx); err != nil {
			c.log.Warn().Err(err).Msg("provider signout failed")
		}
	}()

	c.emit(SlotUpdated{Slot: SlotAccountInfo})
	c.emit(LoggedOut{})
	c.log.Info().Msg("logged out")
}

func (c *Coordinator) completeLogin(requestID string, outcome models.AuthOutcome) {
	c.endRequest()

	switch outcome.Kind {
	case models.OutcomeSuccess:
		sess := models.Session{UserID: outcome.UserID, Email: outcome.Email}
		c.setSession(sess)
		c.log.Info().Str("request_id", requestID).Str("user_id", sess.UserID).Msg("signin succeeded")
		c.emit(SlotUpdated{Slot: SlotLoginError})
		c.emit(LoggedIn{Session: sess})
	case models.OutcomeCanceled:
		c.log.Info().Str("request_id", requestID).Str("diagnostic", outcome.Diagnostic).Msg("signin canceled")
		c.emit(SlotUpdated{Slot: SlotLoginError})
	case models.OutcomeFaulted:
		c.log.Error().Str("request_id", requestID).Str("diagnostic", outcome.Diagnostic).Msg("signin faulted")
		c.emit(SlotUpdated{Slot: SlotLoginError, Text: app.MsgUnknownCredentials})
	}
}

func (c *Coordinator) completeSignup(requestID string, outcome models.AuthOutcome) {
	c.endRequest()

	switch outcome.Kind {
	case models.OutcomeSuccess:
		sess := models.Session{UserID: outcome.UserID, Email: outcome.Email}
		c.setSession(sess)
		c.log.Info().Str("request_id", requestID).Str("user_id", sess.UserID).Msg("signup succeeded")
		c.emit(SlotUpdated{Slot: SlotSignupError})
		c.emit(AccountCreated{Session: sess})
	case models.OutcomeCanceled:
		c.log.Info().Str("request_id", requestID).Str("diagnostic", outcome.Diagnostic).Msg("signup canceled")
		c.emit(SlotUpdated{Slot: SlotSignupError})
	case models.OutcomeFaulted:
		c.log.Error().Str("request_id", requestID).Str("diagnostic", outcome.Diagnostic).Msg("signup faulted")
		c.emit(SlotUpdated{Slot: SlotSignupError, Text: app.MsgCreateAccountFailed})
	}
}

// beginRequest marks the coordinator busy. Returns false when another
// provider call is already in flight, preventing two completions from racing
// to set the session.
func (c *Coordinator) beginRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight {
		return false
	}
	c.inflight = true
	return true
}

func (c *Coordinator) endRequest() {
	c.mu.Lock()
	c.inflight = false
	c.mu.Unlock()
}

func (c *Coordinator) setSession(sess models.Session) {
	c.mu.Lock()
	c.session = &sess
	c.mu.Unlock()
}

// emit publishes without blocking. If the view layer has fallen behind the
// buffer the event is dropped and logged; the flow itself never stalls on a
// slow consumer.
func (c *Coordinator) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Warn().Type("event", ev).Msg("event buffer full, dropping event")
	}
}
