package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"weathereats/models/venue"
)

func TestDistanceScore(t *testing.T) {
	assert.Equal(t, 1.0, DistanceScore(0))
	assert.Equal(t, 0.5, DistanceScore(1))
	assert.Equal(t, 1.0, DistanceScore(-2))
	assert.Equal(t, 0.0, DistanceScore(math.NaN()))
	assert.Equal(t, 0.0, DistanceScore(math.Inf(1)))
	assert.Greater(t, DistanceScore(0.5), DistanceScore(0.6))
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  venue.Suitability
	}{
		{1.0, venue.SuitabilityGreat},
		{0.75, venue.SuitabilityGreat},
		{0.7499, venue.SuitabilityGood},
		{0.55, venue.SuitabilityGood},
		{0.5499, venue.SuitabilityOK},
		{0.35, venue.SuitabilityOK},
		{0.3499, venue.SuitabilityPoor},
		{0, venue.SuitabilityPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.score), "score %v", tt.score)
	}
}

func TestScoreVenue_ColdSoupBeatsSalad(t *testing.T) {
	cold := Categories{Cold: true}
	soup := venue.Venue{VenueID: "a", DistanceKm: 0.5, CuisineTags: []string{"soup"}}
	salad := venue.Venue{VenueID: "b", DistanceKm: 0.5, CuisineTags: []string{"salad"}}

	a := ScoreVenue(soup, cold)
	b := ScoreVenue(salad, cold)

	assert.Greater(t, a.Breakdown.Cuisine, b.Breakdown.Cuisine)
	assert.Greater(t, a.Score, b.Score)
	assert.Equal(t, a.Breakdown.Distance, b.Breakdown.Distance)
}

func TestScoreVenue_AmenityBonuses(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		cats    Categories
		want    float64
		reasons []string
	}{
		{
			name:    "warm with outdoor seating",
			flags:   []string{"outdoor_seating"},
			cats:    Categories{Warm: true},
			want:    bonusWarmOutdoor,
			reasons: []string{"Outdoor seating available"},
		},
		{
			name:    "rain with cover",
			flags:   []string{"covered"},
			cats:    Categories{Moderate: true, Rainy: true},
			want:    bonusRainProtected,
			reasons: []string{"Protected from rain"},
		},
		{
			name:    "rain with indoor flag",
			flags:   []string{"INDOOR"},
			cats:    Categories{Moderate: true, Rainy: true},
			want:    bonusRainProtected,
			reasons: []string{"Protected from rain"},
		},
		{
			name:    "cold without outdoor seating",
			flags:   nil,
			cats:    Categories{Cold: true},
			want:    bonusColdIndoor,
			reasons: []string{"Indoor seating"},
		},
		{
			name:  "cold with outdoor seating earns nothing",
			flags: []string{"outdoor_seating"},
			cats:  Categories{Cold: true},
			want:  0,
		},
		{
			name:    "warm with outdoor seating and air conditioning",
			flags:   []string{"outdoor_seating", "air_conditioning"},
			cats:    Categories{Warm: true},
			want:    bonusWarmOutdoor + bonusWarmAircon,
			reasons: []string{"Outdoor seating available", "Air conditioned"},
		},
		{
			name:    "wind with shelter",
			flags:   []string{"sheltered"},
			cats:    Categories{Moderate: true, Windy: true},
			want:    bonusWindSheltered,
			reasons: []string{"Sheltered from wind"},
		},
		{
			name:  "unknown flags earn nothing",
			flags: []string{"karaoke", "valet"},
			cats:  Categories{Moderate: true, Rainy: true, Windy: true},
			want:  0,
		},
		{
			name:  "bonuses are capped",
			flags: []string{"outdoor_seating", "covered", "air_conditioning", "sheltered"},
			cats:  Categories{Warm: true, Rainy: true, Windy: true},
			want:  AmenityCap,
			reasons: []string{
				"Outdoor seating available", "Protected from rain",
				"Air conditioned", "Sheltered from wind",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreVenue(venue.Venue{VenueID: "v", AmenityFlags: tt.flags}, tt.cats)
			assert.InDelta(t, tt.want, r.Breakdown.Amenity, 1e-12)
			assert.Equal(t, tt.reasons, r.Reasons)
		})
	}
}

func TestScoreVenue_CuisineBonuses(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		cats Categories
		want float64
	}{
		{"cold comfort food", []string{"ramen"}, Categories{Cold: true}, bonusColdCuisine},
		{"case insensitive tags", []string{"Thai"}, Categories{Cold: true}, bonusColdCuisine},
		{"warm light food", []string{"Ice Cream"}, Categories{Warm: true}, bonusWarmCuisine},
		{"rainy cafe", []string{"cafe"}, Categories{Moderate: true, Rainy: true}, bonusRainyCuisine},
		{"moderate pizza", []string{"pizza"}, Categories{Moderate: true}, bonusModerateCuisine},
		{"one match per category", []string{"soup", "ramen", "indian"}, Categories{Cold: true}, bonusColdCuisine},
		{"cold and rainy soup", []string{"soup"}, Categories{Cold: true, Rainy: true}, bonusColdCuisine + bonusRainyCuisine},
		{
			"capped across categories",
			[]string{"soup", "salad"},
			Categories{Cold: true, Warm: true, Rainy: true},
			CuisineCap,
		},
		{"unknown tag", []string{"burger"}, Categories{Cold: true, Rainy: true}, 0},
		{"no tags", nil, Categories{Warm: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ScoreVenue(venue.Venue{VenueID: "v", CuisineTags: tt.tags}, tt.cats)
			assert.InDelta(t, tt.want, r.Breakdown.Cuisine, 1e-12)
		})
	}
}

func TestScoreVenue_SaturatedScoreIsClamped(t *testing.T) {
	v := venue.Venue{
		VenueID:      "top",
		DistanceKm:   0,
		CuisineTags:  []string{"soup", "salad"},
		AmenityFlags: []string{"outdoor_seating", "covered", "air_conditioning", "sheltered"},
	}
	r := ScoreVenue(v, Categories{Cold: true, Warm: true, Rainy: true, Windy: true})

	assert.Equal(t, AmenityCap, r.Breakdown.Amenity)
	assert.Equal(t, CuisineCap, r.Breakdown.Cuisine)
	assert.LessOrEqual(t, r.Score, 1.0)
	assert.InDelta(t, 1.0, r.Score, 1e-9)
	assert.Equal(t, venue.SuitabilityGreat, r.Label)
}

func TestScoreVenue_BoundedForEveryCategoryCombination(t *testing.T) {
	v := venue.Venue{
		VenueID:      "all",
		CuisineTags:  []string{"soup", "salad", "cafe", "pizza"},
		AmenityFlags: []string{"outdoor_seating", "covered", "indoor", "air_conditioning", "sheltered"},
	}
	for mask := 0; mask < 32; mask++ {
		c := Categories{
			Cold:     mask&1 != 0,
			Warm:     mask&2 != 0,
			Moderate: mask&4 != 0,
			Rainy:    mask&8 != 0,
			Windy:    mask&16 != 0,
		}
		for _, km := range []float64{0, 0.1, 3, 1000} {
			v.DistanceKm = km
			r := ScoreVenue(v, c)
			assert.GreaterOrEqual(t, r.Score, 0.0)
			assert.LessOrEqual(t, r.Score, 1.0)
			assert.LessOrEqual(t, r.Breakdown.Amenity, AmenityCap)
			assert.LessOrEqual(t, r.Breakdown.Cuisine, CuisineCap)
		}
	}
}

func TestScoreVenue_WindOnlyMovesAmenity(t *testing.T) {
	v := venue.Venue{
		VenueID:      "w",
		DistanceKm:   1.2,
		CuisineTags:  []string{"soup", "cafe"},
		AmenityFlags: []string{"sheltered"},
	}
	calm := Categories{Cold: true, Rainy: true}
	windy := calm
	windy.Windy = true

	a := ScoreVenue(v, calm)
	b := ScoreVenue(v, windy)

	assert.Equal(t, a.Breakdown.Cuisine, b.Breakdown.Cuisine)
	assert.Equal(t, a.Breakdown.Distance, b.Breakdown.Distance)
	assert.Greater(t, b.Breakdown.Amenity, a.Breakdown.Amenity)
}

func TestScoreVenue_CloserNeverScoresLower(t *testing.T) {
	base := venue.Venue{VenueID: "d", CuisineTags: []string{"greek"}, AmenityFlags: []string{"outdoor_seating"}}
	c := Categories{Warm: true}

	prev := math.Inf(1)
	for _, km := range []float64{0, 0.25, 0.5, 1, 2, 5, 10, 50} {
		v := base
		v.DistanceKm = km
		s := ScoreVenue(v, c).Score
		assert.LessOrEqual(t, s, prev, "distance %v", km)
		prev = s
	}
}

func TestScoreVenue_Reasons(t *testing.T) {
	v := venue.Venue{VenueID: "r", CuisineTags: []string{"soup"}}
	r := ScoreVenue(v, Categories{Cold: true})
	assert.Equal(t, []string{"Indoor seating", "Warm food for cold weather"}, r.Reasons)

	r = ScoreVenue(venue.Venue{VenueID: "n"}, Categories{Moderate: true})
	assert.Empty(t, r.Reasons)
}
