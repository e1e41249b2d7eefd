// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/models"
	"github.com/mattn/go-sqlite3"
)

// userStore is the SQLite-backed implementation of [UserStore].
type userStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewUserStore(db *sql.DB, log *logger.Logger) UserStore {
	log.Debug().Msg("creating user store")
	return &userStore{db: db, log: log}
}

func (s *userStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := sq.Insert(user.TableName()).
		Columns("id", "email", "password_hash", "created_at").
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, ErrEmailAlreadyExists
		}
		s.log.Err(err).Str("email", user.Email).Msg("insert user failed")
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (s *userStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := sq.Select("id", "email", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build select query: %w", err)
	}

	var user models.User
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		s.log.Err(err).Str("email", email).Msg("select user failed")
		return models.User{}, fmt.Errorf("select user: %w", err)
	}

	return user, nil
}

func (s *userStore) Close() error {
	return s.db.Close()
}
