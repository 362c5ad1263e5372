// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/advertisements", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_UnregisteredMethodReturns404(t *testing.T) {
	router := newCheckMethodRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/advertisements", nil))

	require.Equal(t, http.StatusNotFound, rec.Code, "405 must be masked as 404")
}

func TestCheckHTTPMethod_RegisteredMethodPassesThrough(t *testing.T) {
	router := newCheckMethodRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/advertisements", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckHTTPMethod_UnknownPathReturns404(t *testing.T) {
	router := newCheckMethodRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
