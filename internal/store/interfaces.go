// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

// Package store persists provider-side account records. The stub identity
// provider keeps its users in a local SQLite database; queries are built with
// squirrel and the schema is managed by goose migrations.
package store

import (
	"context"

	"github.com/jfarabee/signon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

// UserStore defines account persistence for the stub identity provider.
type UserStore interface {
	// CreateUser persists a new account record. Returns
	// [ErrEmailAlreadyExists] when the address is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByEmail retrieves the account registered under email. Returns
	// [ErrUserNotFound] when no such account exists.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// Close releases the underlying database connection.
	Close() error
}
