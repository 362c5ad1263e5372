package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/internal/utils"
)

// sessionCookieName is the cookie carrying the session token for browser
// clients. API clients can use the "Authorization: Bearer ..." header instead.
const sessionCookieName = "ad_board_session"

// User-facing response messages. The wording is part of the public API
// contract and must not change.
const (
	msgUserCreated         = "User created!"
	msgUsernameExists      = "Username already exists"
	msgLoggedIn            = "Logged in successfully!"
	msgInvalidCredentials  = "Invalid username or password"
	msgLoggedOut           = "Logged out successfully!"
	msgInvalidRequestData  = "Invalid request data"
	msgUnauthorized        = "Authorization required"
	msgInternalServerError = "Internal server error"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidRequestData, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, msgInvalidRequestData, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteMessage(w, msgUsernameExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgUserCreated, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidRequestData, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid username or password")
			utils.WriteMessage(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.SessionService.CreateSession(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteMessage(w, msgLoggedIn, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no session id in context")
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	if err := h.services.SessionService.EndSession(ctx, sessionID); err != nil {
		log.Err(err).Msg("unexpected error occurred during session termination")
		utils.WriteMessage(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	// expire the session cookie for browser clients
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteMessage(w, msgLoggedOut, http.StatusOK)
}
