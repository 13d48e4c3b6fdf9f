package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"weathereats/models"
	"weathereats/models/venue"
	"weathereats/models/weather"
)

// MAX_BODY_BYTES bounds request bodies; a few hundred venues fit comfortably.
const MAX_BODY_BYTES = 1 << 20

// Ranker is the service behind the ranking endpoints.
type Ranker interface {
	Rank(venues []venue.Venue, obs weather.Observation, prefs *weather.PreferenceOverrides, limit int) *models.RankingResponse
	RankNearby(lat, lon, radiusKm float64, obs weather.Observation, prefs *weather.PreferenceOverrides, limit int) (*models.RankingResponse, error)
	DefaultPreferences() weather.Preferences
}

type RankingHandler struct {
	ranker   Ranker
	validate *validator.Validate
	logger   *slog.Logger
}

func NewRankingHandler(ranker Ranker, logger *slog.Logger) *RankingHandler {
	return &RankingHandler{
		ranker:   ranker,
		validate: validator.New(),
		logger:   logger.With("component", "RankingHandler"),
	}
}

// RankVenues handles POST /v1/rankings.
func (h *RankingHandler) RankVenues(w http.ResponseWriter, r *http.Request) {
	var req models.RankRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp := h.ranker.Rank(req.Venues, req.Weather, req.Preferences, req.Limit)
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// RankNearbyVenues handles POST /v1/venues/ranked.
func (h *RankingHandler) RankNearbyVenues(w http.ResponseWriter, r *http.Request) {
	var req models.NearbyRankRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.ranker.RankNearby(req.Lat, req.Lon, req.RadiusKm, req.Weather, req.Preferences, req.Limit)
	if err != nil {
		h.logger.Error("error ranking nearby venues", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// GetDefaultPreferences handles GET /v1/preferences/default.
func (h *RankingHandler) GetDefaultPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.ranker.DefaultPreferences())
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (h *RankingHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.logger.Debug("invalid request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request: " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
		}
	}
	return "Invalid request: " + strings.Join(msgs, "; ")
}
