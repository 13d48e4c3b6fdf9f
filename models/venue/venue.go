package venue

import (
	"fmt"
	"slices"
)

// Venue represents a dining venue candidate and, once ranked, its weather suitability.
type Venue struct {
	VenueID      string   `json:"id" validate:"required"`
	VenueName    *string  `json:"name"`
	CuisineTags  []string `json:"cuisine_tags"`
	DistanceKm   float64  `json:"distance_km" validate:"gte=0"`
	AmenityFlags []string `json:"amenity_flags"`

	// Location is only needed by the venue store; ranking never reads it.
	VenueAddress string  `json:"address,omitempty"`
	VenueLat     float64 `json:"lat,omitempty"`
	VenueLon     float64 `json:"lng,omitempty"`

	// Filled in by the ranking engine.
	Score       float64         `json:"score"`
	Suitability Suitability     `json:"suitability,omitempty"`
	Breakdown   *ScoreBreakdown `json:"breakdown,omitempty"`
	Reasons     []string        `json:"reasons,omitempty"`
}

// ScoreBreakdown holds the capped sub-scores that add up to Score.
type ScoreBreakdown struct {
	Distance float64 `json:"distance"`
	Amenity  float64 `json:"amenity"`
	Cuisine  float64 `json:"cuisine"`
}

// Suitability is the discrete bucket derived from a score.
type Suitability string

const (
	SuitabilityGreat Suitability = "GREAT"
	SuitabilityGood  Suitability = "GOOD"
	SuitabilityOK    Suitability = "OK"
	SuitabilityPoor  Suitability = "POOR"
)

// HasAmenity reports whether the flag is present. Absence means unknown.
func (v *Venue) HasAmenity(a Amenity) bool {
	for _, f := range v.AmenityFlags {
		if Amenity(NormalizeTag(f)) == a {
			return true
		}
	}
	return false
}

// DisplayName returns the name or an empty string when the venue is unnamed.
func (v *Venue) DisplayName() string {
	if v.VenueName == nil {
		return ""
	}
	return *v.VenueName
}

// Clone returns a copy that shares no slices with v.
func (v Venue) Clone() Venue {
	out := v
	out.CuisineTags = slices.Clone(v.CuisineTags)
	out.AmenityFlags = slices.Clone(v.AmenityFlags)
	out.Reasons = slices.Clone(v.Reasons)
	if v.VenueName != nil {
		name := *v.VenueName
		out.VenueName = &name
	}
	if v.Breakdown != nil {
		b := *v.Breakdown
		out.Breakdown = &b
	}
	return out
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, distance=%.2fkm, score=%.3f, suitability=%s)",
		v.VenueID, v.DisplayName(), v.DistanceKm, v.Score, v.Suitability)
}

// Name is a small helper for building venues with a non-null name.
func Name(s string) *string {
	return &s
}
