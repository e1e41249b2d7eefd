// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

// Package server implements the stub identity provider: a small chi-based
// HTTP service backing the client during development and testing. It stores
// accounts in SQLite, hashes passwords with bcrypt, and mints HS256 bearer
// tokens carrying the subject and email claims the client reads back.
package server

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/internal/store"
	"github.com/jfarabee/signon/internal/validators"
	"github.com/jfarabee/signon/models"
)

type Handler struct {
	store     store.UserStore
	validator validators.CredentialValidator
	log       *logger.Logger

	tokenSecret string
	tokenTTL    time.Duration
}

func NewHandler(userStore store.UserStore, validator validators.CredentialValidator, tokenSecret string, tokenTTL time.Duration, log *logger.Logger) *Handler {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Handler{
		store:       userStore,
		validator:   validator,
		log:         log,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
}

func (h *Handler) mintToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(h.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.tokenSecret))
}
