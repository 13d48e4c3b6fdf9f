package venue

import "strings"

// Cuisine is a normalized cuisine tag. Tags outside the known vocabulary are
// kept on the venue but never earn a scoring bonus.
type Cuisine string

const (
	CuisineSoup          Cuisine = "soup"
	CuisineRamen         Cuisine = "ramen"
	CuisineIndian        Cuisine = "indian"
	CuisineThai          Cuisine = "thai"
	CuisineKorean        Cuisine = "korean"
	CuisineTurkish       Cuisine = "turkish"
	CuisineLebanese      Cuisine = "lebanese"
	CuisineChinese       Cuisine = "chinese"
	CuisineItalian       Cuisine = "italian"
	CuisineSalad         Cuisine = "salad"
	CuisineMediterranean Cuisine = "mediterranean"
	CuisineSeafood       Cuisine = "seafood"
	CuisineSushi         Cuisine = "sushi"
	CuisineGreek         Cuisine = "greek"
	CuisineVietnamese    Cuisine = "vietnamese"
	CuisineIceCream      Cuisine = "ice_cream"
	CuisineGelato        Cuisine = "gelato"
	CuisineCafe          Cuisine = "cafe"
	CuisineBakery        Cuisine = "bakery"
	CuisinePizza         Cuisine = "pizza"
)

var knownCuisines = map[Cuisine]struct{}{
	CuisineSoup: {}, CuisineRamen: {}, CuisineIndian: {}, CuisineThai: {},
	CuisineKorean: {}, CuisineTurkish: {}, CuisineLebanese: {}, CuisineChinese: {},
	CuisineItalian: {}, CuisineSalad: {}, CuisineMediterranean: {}, CuisineSeafood: {},
	CuisineSushi: {}, CuisineGreek: {}, CuisineVietnamese: {}, CuisineIceCream: {},
	CuisineGelato: {}, CuisineCafe: {}, CuisineBakery: {}, CuisinePizza: {},
}

// Known reports whether c is part of the scoring vocabulary.
func (c Cuisine) Known() bool {
	_, ok := knownCuisines[c]
	return ok
}

// Amenity is a normalized amenity flag.
type Amenity string

const (
	AmenityOutdoorSeating  Amenity = "outdoor_seating"
	AmenityCovered         Amenity = "covered"
	AmenityIndoor          Amenity = "indoor"
	AmenityAirConditioning Amenity = "air_conditioning"
	AmenityWheelchair      Amenity = "wheelchair"
	AmenitySheltered       Amenity = "sheltered"
)

var knownAmenities = map[Amenity]struct{}{
	AmenityOutdoorSeating: {}, AmenityCovered: {}, AmenityIndoor: {},
	AmenityAirConditioning: {}, AmenityWheelchair: {}, AmenitySheltered: {},
}

func (a Amenity) Known() bool {
	_, ok := knownAmenities[a]
	return ok
}

// NormalizeTag lower-cases and trims a tag; inner spaces and dashes become
// underscores so "Ice Cream" and "ice-cream" both map to ice_cream.
func NormalizeTag(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	t = strings.Join(strings.Fields(t), "_")
	return strings.ReplaceAll(t, "-", "_")
}

// ParseCuisineTags splits a raw OSM style cuisine value ("thai;Noodle, soup")
// into normalized tags, keeping first-seen order and dropping duplicates.
func ParseCuisineTags(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == ',' })
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		t := NormalizeTag(p)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// osmAmenityKeys maps OSM tag keys (value "yes") to amenity flags, in output order.
var osmAmenityKeys = []struct {
	key     string
	amenity Amenity
}{
	{"outdoor_seating", AmenityOutdoorSeating},
	{"covered", AmenityCovered},
	{"roof", AmenityCovered},
	{"indoor_seating", AmenityIndoor},
	{"air_conditioning", AmenityAirConditioning},
	{"wheelchair", AmenityWheelchair},
	{"sheltered", AmenitySheltered},
}

// AmenitiesFromOSMTags derives amenity flags from raw map-data tags.
func AmenitiesFromOSMTags(tags map[string]string) []string {
	var flags []string
	seen := make(map[Amenity]struct{})
	for _, k := range osmAmenityKeys {
		if strings.ToLower(strings.TrimSpace(tags[k.key])) != "yes" {
			continue
		}
		if _, dup := seen[k.amenity]; dup {
			continue
		}
		seen[k.amenity] = struct{}{}
		flags = append(flags, string(k.amenity))
	}
	return flags
}
