package services

import (
	"weathereats/dao/redis"
	"weathereats/models/venue"
)

// VenueService exposes read access to the stored venue catalog.
type VenueService struct {
	venueDao *redis.RedisVenueDAO
}

// NewVenueService constructs a new VenueService with Redis dependency injection.
func NewVenueService(venueDao *redis.RedisVenueDAO) *VenueService {
	return &VenueService{venueDao: venueDao}
}

// GetVenue returns redis.ErrVenueNotFound for unknown ids.
func (vs *VenueService) GetVenue(venueId string) (*venue.Venue, error) {
	return vs.venueDao.GetVenue(venueId)
}
