package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/utils"
	"github.com/go-chi/chi/v5"
)

const (
	msgAdvertisementCreated  = "New advertisement created!"
	msgAdvertisementNotFound = "Advertisement not found"
	msgAdvertisementDeleted  = "Advertisement has been deleted"
	msgNotAdvertisementOwner = "You do not have permission to delete this advertisement"
)

type advertisementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) listAdvertisements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	advertisements, err := h.services.AdvertisementService.GetAll(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, advertisements, http.StatusOK)
}

func (h *Handler) getAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adID, err := advertisementIDFromRequest(r)
	if err != nil {
		// a non-numeric id can never match an advertisement
		log.Debug().Err(err).Msg("invalid advertisement id in path")
		utils.WriteMessage(w, msgAdvertisementNotFound, http.StatusNotFound)
		return
	}

	advertisement, err := h.services.AdvertisementService.GetByID(ctx, adID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, advertisement, http.StatusOK)
}

func (h *Handler) createAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	var request advertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidRequestData, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AdvertisementService.Create(ctx, request.Title, request.Description, ownerID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, msgAdvertisementCreated, http.StatusCreated)
}

func (h *Handler) deleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	adID, err := advertisementIDFromRequest(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid advertisement id in path")
		utils.WriteMessage(w, msgAdvertisementNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.AdvertisementService.Delete(ctx, adID, requesterID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, msgAdvertisementDeleted, http.StatusOK)
}

// advertisementIDFromRequest parses the {id} path parameter as an int64.
func advertisementIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
