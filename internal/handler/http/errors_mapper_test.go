package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "expired session", err: service.ErrSessionExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "not owner", err: service.ErrNotAdvertisementOwner, want: http.StatusForbidden},
		{name: "duplicate username", err: store.ErrUsernameAlreadyExists, want: http.StatusConflict},
		{name: "advertisement not found", err: store.ErrAdvertisementNotFound, want: http.StatusNotFound},
		{name: "wrapped advertisement not found", err: fmt.Errorf("lookup: %w", store.ErrAdvertisementNotFound), want: http.StatusNotFound},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, msgAdvertisementNotFound, messageFromError(store.ErrAdvertisementNotFound))
	assert.Equal(t, msgNotAdvertisementOwner, messageFromError(service.ErrNotAdvertisementOwner))
	assert.Equal(t, msgUsernameExists, messageFromError(store.ErrUsernameAlreadyExists))

	// internal errors keep their details out of the response body
	assert.Equal(t, msgInternalServerError, messageFromError(errors.New("pq: connection refused")))
}
