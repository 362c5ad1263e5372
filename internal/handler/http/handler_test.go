// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ad-board/internal/config"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, username, password string) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	return m.registerUserFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

// ─────────────────────────────────────────────
// Mock service.SessionService
// ─────────────────────────────────────────────

type mockSessionService struct {
	createSessionFn func(ctx context.Context, user models.User) (models.Token, error)
	authenticateFn  func(ctx context.Context, tokenString string) (models.Token, error)
	endSessionFn    func(ctx context.Context, sessionID string) error
}

func (m *mockSessionService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	return m.createSessionFn(ctx, user)
}

func (m *mockSessionService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockSessionService) EndSession(ctx context.Context, sessionID string) error {
	return m.endSessionFn(ctx, sessionID)
}

// ─────────────────────────────────────────────
// Mock service.AdvertisementService
// ─────────────────────────────────────────────

type mockAdvertisementService struct {
	createFn  func(ctx context.Context, title, description string, ownerID int64) (models.Advertisement, error)
	getByIDFn func(ctx context.Context, adID int64) (models.Advertisement, error)
	getAllFn  func(ctx context.Context) ([]models.Advertisement, error)
	deleteFn  func(ctx context.Context, adID int64, requesterID int64) error
}

func (m *mockAdvertisementService) Create(ctx context.Context, title, description string, ownerID int64) (models.Advertisement, error) {
	return m.createFn(ctx, title, description, ownerID)
}

func (m *mockAdvertisementService) GetByID(ctx context.Context, adID int64) (models.Advertisement, error) {
	return m.getByIDFn(ctx, adID)
}

func (m *mockAdvertisementService) GetAll(ctx context.Context) ([]models.Advertisement, error) {
	return m.getAllFn(ctx)
}

func (m *mockAdvertisementService) Delete(ctx context.Context, adID int64, requesterID int64) error {
	return m.deleteFn(ctx, adID, requesterID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given service mocks. Nil mocks
// are fine for tests that never touch the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, sessions service.SessionService, ads service.AdvertisementService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:          auth,
		SessionService:       sessions,
		AdvertisementService: ads,
	}
	return NewHandler(svcs, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
}

// decodeMessage unmarshals the uniform `{"message": "..."}` response body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}
