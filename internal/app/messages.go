// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

// Package app contains shared application-layer constants used across the
// signon client and the stub identity provider.
//
// The Msg* constants fall into two groups: user-facing labels rendered by the
// view layer (every failure path the coordinator classifies maps to exactly
// one of them), and provider response messages written into HTTP bodies by
// the stub server. Keeping them in one place ensures consistent wording
// throughout the flow.
package app

// User-facing labels emitted by the auth coordinator.
const (
	// MsgInvalidEmail is shown when the username field fails the email
	// format check, on either flow.
	MsgInvalidEmail = "Please enter a valid (email) username."

	// MsgInvalidLoginPassword is shown when the password fails the format
	// check on the login flow.
	MsgInvalidLoginPassword = "Please enter a valid alphanumeric password."

	// MsgInvalidSignupPassword is shown when the password fails the format
	// check on the signup flow.
	MsgInvalidSignupPassword = "Please enter a valid alphanumeric password, 6+ characters."

	// MsgPasswordsDoNotMatch is shown when password and confirmation differ
	// on the signup flow.
	MsgPasswordsDoNotMatch = "Entered passwords do not match."

	// MsgProviderNotReady is shown when a submission arrives before the
	// readiness gate has opened.
	MsgProviderNotReady = "Connection to provider not yet established. Please wait."

	// MsgRequestInFlight is shown when a submission arrives while another
	// provider call is still pending.
	MsgRequestInFlight = "Another request is already in progress. Please wait."

	// MsgLoggingIn is the status text shown between a login dispatch and
	// its completion.
	MsgLoggingIn = "Logging in..."

	// MsgCreatingAccount is the status text shown between an
	// account-creation dispatch and its completion.
	MsgCreatingAccount = "Creating account..."

	// MsgUnknownCredentials is the fixed label for any faulted sign-in.
	// The underlying provider error goes to the diagnostic log only.
	MsgUnknownCredentials = "Unknown username/password combination. Please enter a valid username/password."

	// MsgCreateAccountFailed is the fixed label for any faulted
	// account creation.
	MsgCreateAccountFailed = "Could not create the account. Please try again."
)

// Response messages written by the stub identity provider.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails format validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing account.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgEmailAlreadyExists is returned when a signup attempt targets an
	// address that is already registered.
	MsgEmailAlreadyExists = "email already exists"
)
