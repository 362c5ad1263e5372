package http

import (
	"net/http"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/utils"
)

const welcomePage = `<!DOCTYPE html>
<html>
<head><title>Advertisement Board</title></head>
<body>
<h1>Welcome to the Advertisement Board!</h1>
<p>Register, log in and post your advertisements via the JSON API.</p>
</body>
</html>`

// welcome serves a small static HTML landing page.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(welcomePage)); err != nil {
		log.Err(err).Msg("error writing welcome page")
	}
}

// ping is a liveness probe.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "pong", http.StatusOK)
}
