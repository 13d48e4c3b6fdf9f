package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"weathereats/dao/redis"
	"weathereats/models/venue"
)

const VENUE_ID_PATH_ARG = "id"

// VenueGetter reads single venues from the catalog.
type VenueGetter interface {
	GetVenue(venueId string) (*venue.Venue, error)
}

type VenueHandler struct {
	venues VenueGetter
	logger *slog.Logger
}

func NewVenueHandler(venues VenueGetter, logger *slog.Logger) *VenueHandler {
	return &VenueHandler{venues: venues, logger: logger.With("component", "VenueHandler")}
}

// GetVenue handles GET /v1/venues/{id}.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[VENUE_ID_PATH_ARG]
	if id == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid argument "+VENUE_ID_PATH_ARG)
		return
	}

	v, err := h.venues.GetVenue(id)
	if errors.Is(err, redis.ErrVenueNotFound) {
		writeError(w, h.logger, http.StatusNotFound, "Venue not found")
		return
	}
	if err != nil {
		h.logger.Error("error loading venue", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, v)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "pong"})
}
