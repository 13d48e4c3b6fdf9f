package models

import "weathereats/models/venue"

// VenueSeed is one record of the venue catalog seed file. Records exported
// from map data carry the raw cuisine string and tag map; curated records may
// set CuisineTags and AmenityFlags directly.
type VenueSeed struct {
	ID           string            `json:"id"`
	Name         *string           `json:"name"`
	Address      string            `json:"address,omitempty"`
	Lat          float64           `json:"lat"`
	Lng          float64           `json:"lng"`
	Cuisine      string            `json:"cuisine,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	CuisineTags  []string          `json:"cuisine_tags,omitempty"`
	AmenityFlags []string          `json:"amenity_flags,omitempty"`
}

// ToVenue normalizes the seed into a Venue. Explicit tags and flags are merged
// with the ones derived from the raw fields.
func (s VenueSeed) ToVenue() venue.Venue {
	cuisine := venue.ParseCuisineTags(s.Cuisine)
	for _, t := range s.CuisineTags {
		cuisine = appendUnique(cuisine, venue.NormalizeTag(t))
	}
	amenities := venue.AmenitiesFromOSMTags(s.Tags)
	for _, f := range s.AmenityFlags {
		amenities = appendUnique(amenities, venue.NormalizeTag(f))
	}

	name := s.Name
	if name == nil && s.Tags["name"] != "" {
		name = venue.Name(s.Tags["name"])
	}

	return venue.Venue{
		VenueID:      s.ID,
		VenueName:    name,
		VenueAddress: s.Address,
		VenueLat:     s.Lat,
		VenueLon:     s.Lng,
		CuisineTags:  cuisine,
		AmenityFlags: amenities,
	}
}

func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
