package db

import (
	"context"
	"errors"
)

// ErrNil is returned by Get when the key does not exist.
var ErrNil = errors.New("redis: key not found")

// GeoMember is a geo index member with its JSON payload and its distance
// from the query point.
type GeoMember struct {
	Name       string
	JSON       string
	DistanceKm float64
}

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	RemoveLocation(ctx context.Context, geoKey, memberKey string) error
	GetLocationsWithinRadius(key string, lat, lon, radiusKm float64) ([]GeoMember, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
