package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrSessionExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAdvertisementOwner:   http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrAdvertisementNotFound: http.StatusNotFound,
	store.ErrSessionNotFound:       http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the user-facing message for each classified error.
// Errors absent from this map are reported with a generic message so that
// internal details never leak into responses.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     msgInvalidRequestData,
	service.ErrInvalidCredentials:      msgInvalidCredentials,
	service.ErrSessionExpiredOrInvalid: msgUnauthorized,
	service.ErrNotAdvertisementOwner:   msgNotAdvertisementOwner,

	store.ErrUsernameAlreadyExists: msgUsernameExists,
	store.ErrNoUserWasFound:        msgInvalidCredentials,
	store.ErrAdvertisementNotFound: msgAdvertisementNotFound,
	store.ErrSessionNotFound:       msgUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternalServerError
}

// writeError classifies err and writes the matching `{"message": "..."}`
// response. Unclassified errors become 500 with a generic message and are
// logged at error level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err), status)
}
