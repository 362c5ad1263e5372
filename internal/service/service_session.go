// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/internal/utils"
	"github.com/MKhiriev/go-ad-board/models"
)

// sessionService is the concrete implementation of SessionService.
//
// Each login produces a server-side session record plus a signed JWT whose
// `jti` claim points at that record. Token validation therefore has two
// layers: signature/expiry checks on the JWT itself, and a lookup of the
// backing session row - which makes logout an actual revocation instead of
// a client-side convention.
type sessionService struct {
	sessionRepository store.SessionRepository
	uuidGenerator     *utils.UUIDGenerator
	logger            *logger.Logger

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
}

// NewSessionService constructs a SessionService from auth configs.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
	}
}

// CreateSession opens a new session for the given user and returns a signed
// JWT bound to it.
func (s *sessionService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	sessionID := s.uuidGenerator.Generate()

	now := time.Now().UTC()
	session := models.Session{
		SessionID: sessionID,
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("session creation ended with error")
		return models.Token{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.UserID, sessionID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("jwt generation ended with error")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates a raw token string and returns the parsed token.
//
// A token is accepted only when the signature, issuer and expiry claims all
// check out AND the session it references still exists and has not expired.
// Every other outcome maps to ErrSessionExpiredOrInvalid.
func (s *sessionService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("jwt validation failed")
		return models.Token{}, ErrSessionExpiredOrInvalid
	}

	session, err := s.sessionRepository.GetSession(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			log.Debug().Str("session_id", token.SessionID).Msg("session was revoked or never existed")
			return models.Token{}, ErrSessionExpiredOrInvalid
		}

		log.Err(err).Str("session_id", token.SessionID).Msg("session search ended with error")
		return models.Token{}, fmt.Errorf("session search ended with error: %w", err)
	}

	if session.IsExpired(time.Now().UTC()) {
		// best effort cleanup of the stale row
		_ = s.sessionRepository.DeleteSession(ctx, session.SessionID)
		return models.Token{}, ErrSessionExpiredOrInvalid
	}

	return token, nil
}

// EndSession revokes the session with the given id. Revoking a session that
// no longer exists is not an error.
func (s *sessionService) EndSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}
