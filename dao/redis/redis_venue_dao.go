package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"weathereats/db"
	"weathereats/models/venue"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%s"

// ErrVenueNotFound is returned when a venue id has no stored payload.
var ErrVenueNotFound = errors.New("venue not found")

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
	logger *slog.Logger
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient, logger *slog.Logger) *RedisVenueDAO {
	return &RedisVenueDAO{client: client, logger: logger.With("component", "RedisVenueDAO")}
}

func venueKey(id string) string {
	return fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, id)
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
// Request-specific fields (distance and scores) are not persisted.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	stored := v.Clone()
	stored.DistanceKm = 0
	stored.Score = 0
	stored.Suitability = ""
	stored.Breakdown = nil
	stored.Reasons = nil

	ctx := dao.client.GetContext()
	return dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey(v.VenueID), v.VenueLat, v.VenueLon, stored)
}

// GetVenue loads a single venue by id.
func (dao *RedisVenueDAO) GetVenue(id string) (*venue.Venue, error) {
	str, err := dao.client.Get(venueKey(id))
	if errors.Is(err, db.ErrNil) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s: %w", id, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// DeleteVenue removes a venue from the geo index.
func (dao *RedisVenueDAO) DeleteVenue(id string) error {
	ctx := dao.client.GetContext()
	if err := dao.client.RemoveLocation(ctx, VENUES_GEO_KEY_V1, venueKey(id)); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", id, err)
	}
	return nil
}

// GetNearbyVenues retrieves venues within radiusKm of (lat, lon), nearest
// first, with DistanceKm set from the geo index.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radiusKm float64) ([]venue.Venue, error) {
	members, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(members))
	for i, m := range members {
		if err := json.Unmarshal([]byte(m.JSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON for %s: %w", m.Name, err)
		}
		venues[i].DistanceKm = m.DistanceKm
	}
	dao.logger.Debug("loaded nearby venues", "lat", lat, "lon", lon, "radius_km", radiusKm, "count", len(venues))
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the geo index.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]string, error) {
	keys, err := dao.client.Keys(venueKey("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}
	prefix := venueKey("")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
