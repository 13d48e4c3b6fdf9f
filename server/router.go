package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RankingRoutes serves the ranking endpoints.
type RankingRoutes interface {
	RankVenues(w http.ResponseWriter, r *http.Request)
	RankNearbyVenues(w http.ResponseWriter, r *http.Request)
	GetDefaultPreferences(w http.ResponseWriter, r *http.Request)
}

// VenueRoutes serves catalog lookups and the health check.
type VenueRoutes interface {
	GetVenue(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	rankingHandler RankingRoutes
	venueHandler   VenueRoutes
	metricsHandler http.Handler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes. metricsHandler may be nil.
func NewRouter(
	rankingHandler RankingRoutes,
	venueHandler VenueRoutes,
	metricsHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		rankingHandler: rankingHandler,
		venueHandler:   venueHandler,
		metricsHandler: metricsHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// body: {venues, weather, preferences?, limit?}
	r.router.HandleFunc("/v1/rankings", r.rankingHandler.RankVenues).Methods("POST")
	// body: {lat, lon, radius_km, weather, preferences?, limit?}
	r.router.HandleFunc("/v1/venues/ranked", r.rankingHandler.RankNearbyVenues).Methods("POST")
	r.router.HandleFunc("/v1/venues/{id}", r.venueHandler.GetVenue).Methods("GET")
	r.router.HandleFunc("/v1/preferences/default", r.rankingHandler.GetDefaultPreferences).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods("GET")
	}
}
