// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (UserStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserStore(db, logger.Nop()), mock
}

func testUser() models.User {
	return models.User{
		ID:           "f7c4a2f0-0000-4000-8000-000000000001",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser_Success(t *testing.T) {
	s, mock := newTestStore(t)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,password_hash,created_at) VALUES (?,?,?,?)")).
		WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := s.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s, mock := newTestStore(t)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(sqlite3.Error{
			Code:         sqlite3.ErrConstraint,
			ExtendedCode: sqlite3.ErrConstraintUnique,
		})

	_, err := s.CreateUser(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DriverError(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("database is locked"))

	_, err := s.CreateUser(context.Background(), testUser())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestGetUserByEmail_Success(t *testing.T) {
	s, mock := newTestStore(t)
	user := testUser()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow(user.ID, user.Email, user.PasswordHash, user.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at FROM users WHERE email = ?")).
		WithArgs(user.Email).
		WillReturnRows(rows)

	got, err := s.GetUserByEmail(context.Background(), user.Email)

	require.NoError(t, err)
	assert.Equal(t, user, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at FROM users")).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, err := s.GetUserByEmail(context.Background(), "missing@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
