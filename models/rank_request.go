package models

import (
	"weathereats/models/venue"
	"weathereats/models/weather"
)

// RankRequest asks for a ranking of caller-supplied venues.
type RankRequest struct {
	Venues      []venue.Venue                `json:"venues" validate:"dive"`
	Weather     weather.Observation          `json:"weather"`
	Preferences *weather.PreferenceOverrides `json:"preferences,omitempty"`
	Limit       int                          `json:"limit,omitempty" validate:"gte=0,lte=500"`
}

// NearbyRankRequest asks for a ranking of stored venues around a point.
type NearbyRankRequest struct {
	Lat         float64                      `json:"lat" validate:"gte=-90,lte=90"`
	Lon         float64                      `json:"lon" validate:"gte=-180,lte=180"`
	RadiusKm    float64                      `json:"radius_km" validate:"gte=1,lte=10"`
	Weather     weather.Observation          `json:"weather"`
	Preferences *weather.PreferenceOverrides `json:"preferences,omitempty"`
	Limit       int                          `json:"limit,omitempty" validate:"gte=0,lte=500"`
}
