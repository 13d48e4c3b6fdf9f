package ranking

import (
	"math"

	"weathereats/models/venue"
)

// Maximum share of the final score contributed by each factor.
const (
	DistanceWeight = 0.40
	AmenityCap     = 0.30
	CuisineCap     = 0.30
)

// Label breakpoints, inclusive lower bounds.
const (
	GreatThreshold = 0.75
	GoodThreshold  = 0.55
	OKThreshold    = 0.35
)

// Amenity bonuses. Rain protection outweighs outdoor seating on a warm day.
const (
	bonusWarmOutdoor   = 0.15
	bonusRainProtected = 0.20
	bonusColdIndoor    = 0.08
	bonusWarmAircon    = 0.06
	bonusWindSheltered = 0.12
)

// Cuisine bonuses.
const (
	bonusColdCuisine     = 0.20
	bonusWarmCuisine     = 0.20
	bonusRainyCuisine    = 0.15
	bonusModerateCuisine = 0.08
)

func cuisineSet(cs ...venue.Cuisine) map[venue.Cuisine]struct{} {
	m := make(map[venue.Cuisine]struct{}, len(cs))
	for _, c := range cs {
		m[c] = struct{}{}
	}
	return m
}

var (
	coldCuisines = cuisineSet(
		venue.CuisineSoup, venue.CuisineRamen, venue.CuisineIndian, venue.CuisineThai,
		venue.CuisineKorean, venue.CuisineTurkish, venue.CuisineLebanese,
		venue.CuisineChinese, venue.CuisineItalian,
	)
	warmCuisines = cuisineSet(
		venue.CuisineSalad, venue.CuisineMediterranean, venue.CuisineSeafood,
		venue.CuisineSushi, venue.CuisineGreek, venue.CuisineVietnamese,
		venue.CuisineIceCream, venue.CuisineGelato,
	)
	rainyCuisines    = cuisineSet(venue.CuisineSoup, venue.CuisineRamen, venue.CuisineCafe, venue.CuisineBakery)
	moderateCuisines = cuisineSet(venue.CuisinePizza, venue.CuisineItalian)
)

// Result is the outcome of scoring a single venue.
type Result struct {
	Score     float64
	Label     venue.Suitability
	Breakdown venue.ScoreBreakdown
	Reasons   []string
}

// ScoreVenue computes the suitability of v under the given categories. It
// never fails: unknown tags and missing flags add nothing.
func ScoreVenue(v venue.Venue, c Categories) Result {
	dist := DistanceWeight * DistanceScore(v.DistanceKm)
	amenity, amenityReasons := amenityScore(v, c)
	cuisine, cuisineReasons := cuisineScore(v.CuisineTags, c)

	score := clamp(dist+amenity+cuisine, 0, 1)
	return Result{
		Score: score,
		Label: LabelFor(score),
		Breakdown: venue.ScoreBreakdown{
			Distance: dist,
			Amenity:  amenity,
			Cuisine:  cuisine,
		},
		Reasons: append(amenityReasons, cuisineReasons...),
	}
}

// DistanceScore maps a distance to (0, 1], closer is better. Negative
// distances count as zero and NaN as unreachable.
func DistanceScore(km float64) float64 {
	if math.IsNaN(km) {
		return 0
	}
	if km < 0 {
		km = 0
	}
	return 1 / (1 + km)
}

// LabelFor buckets a score using the fixed breakpoints.
func LabelFor(score float64) venue.Suitability {
	switch {
	case score >= GreatThreshold:
		return venue.SuitabilityGreat
	case score >= GoodThreshold:
		return venue.SuitabilityGood
	case score >= OKThreshold:
		return venue.SuitabilityOK
	default:
		return venue.SuitabilityPoor
	}
}

func amenityScore(v venue.Venue, c Categories) (float64, []string) {
	outdoor := v.HasAmenity(venue.AmenityOutdoorSeating)
	protected := v.HasAmenity(venue.AmenityCovered) || v.HasAmenity(venue.AmenityIndoor)

	var score float64
	var reasons []string
	add := func(bonus float64, reason string) {
		score += bonus
		reasons = append(reasons, reason)
	}

	if c.Warm && outdoor {
		add(bonusWarmOutdoor, "Outdoor seating available")
	}
	if c.Rainy && protected {
		add(bonusRainProtected, "Protected from rain")
	}
	if c.Cold && !outdoor {
		add(bonusColdIndoor, "Indoor seating")
	}
	if c.Warm && v.HasAmenity(venue.AmenityAirConditioning) {
		add(bonusWarmAircon, "Air conditioned")
	}
	if c.Windy && v.HasAmenity(venue.AmenitySheltered) {
		add(bonusWindSheltered, "Sheltered from wind")
	}
	return clamp(score, 0, AmenityCap), reasons
}

func cuisineScore(tags []string, c Categories) (float64, []string) {
	normalized := make([]venue.Cuisine, 0, len(tags))
	for _, t := range tags {
		normalized = append(normalized, venue.Cuisine(venue.NormalizeTag(t)))
	}
	matches := func(set map[venue.Cuisine]struct{}) bool {
		for _, t := range normalized {
			if _, ok := set[t]; ok {
				return true
			}
		}
		return false
	}

	var score float64
	var reasons []string
	if c.Cold && matches(coldCuisines) {
		score += bonusColdCuisine
		reasons = append(reasons, "Warm food for cold weather")
	}
	if c.Warm && matches(warmCuisines) {
		score += bonusWarmCuisine
		reasons = append(reasons, "Light food for warm weather")
	}
	if c.Rainy && matches(rainyCuisines) {
		score += bonusRainyCuisine
		reasons = append(reasons, "Cozy for rainy weather")
	}
	if c.Moderate && matches(moderateCuisines) {
		score += bonusModerateCuisine
		reasons = append(reasons, "Classic pick for mild weather")
	}
	return clamp(score, 0, CuisineCap), reasons
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
