// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

// Package adapter provides transport-layer abstractions for communicating with
// the identity provider.
//
// The primary abstraction is [ProviderAdapter], which decouples the auth
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPProviderAdapter]) built on resty.
//
// Transport failures never surface as raw errors to the coordinator: SignIn
// and CreateAccount fold every failure mode into a [models.AuthOutcome] so the
// caller only has to branch on the outcome kind.
package adapter

import (
	"context"

	"github.com/jfarabee/signon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_adapter_mock.go -package=mock

// ProviderAdapter defines transport-agnostic communication with the identity
// provider. Implementations are responsible for serialisation, bearer-token
// management, and classifying transport results into auth outcomes.
type ProviderAdapter interface {
	// SetToken stores the bearer token attached to subsequent authenticated
	// requests. Called by the adapter itself after a successful SignIn or
	// CreateAccount.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// SignIn authenticates creds with the provider. The returned outcome is
	// Success with the provider-assigned user ID, Canceled if ctx was
	// cancelled before completion, or Faulted for any transport or provider
	// failure. On success the bearer token is stored via SetToken.
	SignIn(ctx context.Context, creds models.Credentials) models.AuthOutcome

	// CreateAccount registers a new account for creds with the provider.
	// Outcome classification matches SignIn; a duplicate address is a
	// Faulted outcome whose diagnostic names the conflict.
	CreateAccount(ctx context.Context, creds models.Credentials) models.AuthOutcome

	// SignOut invalidates the current session with the provider and clears
	// the stored token. Safe to call without a token.
	SignOut(ctx context.Context) error

	// CheckHealth probes the provider health endpoint. A nil return means
	// the provider is reachable and accepting requests.
	CheckHealth(ctx context.Context) error
}
