package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"weathereats/models"
	"weathereats/models/venue"
	"weathereats/models/weather"
	"weathereats/ranking"
)

// VenueFinder looks up stored venues around a point with distances filled in.
type VenueFinder interface {
	GetNearbyVenues(lat, lon float64, radiusKm float64) ([]venue.Venue, error)
}

// RankingService wraps the ranking engine with the caller-side policy:
// default thresholds, result caps and the distance fallback.
type RankingService struct {
	engine     *ranking.Engine
	finder     VenueFinder
	defaults   weather.Preferences
	maxResults int
	metrics    *RankingMetrics
	logger     *slog.Logger
}

// NewRankingService constructs a RankingService. metrics may be nil.
func NewRankingService(
	engine *ranking.Engine,
	finder VenueFinder,
	defaults weather.Preferences,
	maxResults int,
	metrics *RankingMetrics,
	logger *slog.Logger,
) *RankingService {
	return &RankingService{
		engine:     engine,
		finder:     finder,
		defaults:   defaults,
		maxResults: maxResults,
		metrics:    metrics,
		logger:     logger.With("component", "RankingService"),
	}
}

// DefaultPreferences returns the thresholds used when a caller sends none.
func (s *RankingService) DefaultPreferences() weather.Preferences {
	return s.defaults
}

// Rank orders venues for the given weather. Invalid weather or thresholds do
// not fail the call: the venues come back in distance order with Ranked=false.
// limit <= 0 means the configured maximum.
func (s *RankingService) Rank(venues []venue.Venue, obs weather.Observation, prefs *weather.PreferenceOverrides, limit int) *models.RankingResponse {
	p := prefs.Apply(s.defaults)
	if p.Degenerate() {
		s.logger.Debug("warm threshold not above cold threshold", "cold", p.ColdThresholdC, "warm", p.WarmThresholdC)
	}

	start := time.Now()
	resp := &models.RankingResponse{Total: len(venues)}

	cats, err := ranking.Classify(obs, p)
	switch {
	case err == nil:
		resp.Ranked = true
		resp.Categories = cats.Active()
		resp.Venues = s.engine.RankClassified(venues, cats)
		s.metrics.observeRanking(OutcomeRanked, time.Since(start).Seconds(), len(venues))
	case errors.Is(err, ranking.ErrInvalidWeatherInput), errors.Is(err, ranking.ErrInvalidPreferences):
		s.logger.Warn("ranking unavailable, falling back to distance order", "error", err)
		resp.Venues = ranking.RankByDistance(venues)
		resp.Error = "ranking unavailable: " + err.Error()
		s.metrics.observeRanking(OutcomeFallback, time.Since(start).Seconds(), len(venues))
	default:
		s.logger.Error("ranking failed", "error", err)
		resp.Venues = ranking.RankByDistance(venues)
		resp.Error = "ranking unavailable"
		s.metrics.observeRanking(OutcomeError, time.Since(start).Seconds(), len(venues))
	}

	resp.Venues = truncate(resp.Venues, s.capFor(limit))
	return resp
}

// RankNearby loads stored venues within radiusKm and ranks them.
func (s *RankingService) RankNearby(lat, lon, radiusKm float64, obs weather.Observation, prefs *weather.PreferenceOverrides, limit int) (*models.RankingResponse, error) {
	venues, err := s.finder.GetNearbyVenues(lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to load nearby venues: %w", err)
	}
	s.logger.Info("ranking nearby venues", "lat", lat, "lon", lon, "radius_km", radiusKm, "candidates", len(venues))
	return s.Rank(venues, obs, prefs, limit), nil
}

func (s *RankingService) capFor(limit int) int {
	if limit <= 0 || (s.maxResults > 0 && limit > s.maxResults) {
		return s.maxResults
	}
	return limit
}

func truncate(vs []venue.Venue, n int) []venue.Venue {
	if n <= 0 || len(vs) <= n {
		return vs
	}
	return vs[:n]
}
