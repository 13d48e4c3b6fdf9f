package ranking

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"weathereats/models/venue"
	"weathereats/models/weather"
)

// Engine ranks venues for a weather observation. It holds no state between
// calls and is safe for concurrent use.
type Engine struct {
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers scores venues on up to n goroutines. n <= 1 scores inline.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rank classifies the weather once, scores every venue and returns a new
// slice sorted by descending score. The input slice is not modified. Output
// length always equals input length.
func (e *Engine) Rank(venues []venue.Venue, obs weather.Observation, prefs weather.Preferences) ([]venue.Venue, error) {
	cats, err := Classify(obs, prefs)
	if err != nil {
		return nil, err
	}
	return e.RankClassified(venues, cats), nil
}

// RankClassified scores and sorts venues for categories the caller already
// obtained from Classify.
func (e *Engine) RankClassified(venues []venue.Venue, cats Categories) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	score := func(i int) {
		v := venues[i].Clone()
		r := ScoreVenue(v, cats)
		v.Score = r.Score
		v.Suitability = r.Label
		v.Breakdown = &r.Breakdown
		v.Reasons = r.Reasons
		out[i] = v
	}

	if e.workers > 1 && len(venues) > 1 {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for i := range venues {
			i := i
			g.Go(func() error {
				score(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range venues {
			score(i)
		}
	}

	slices.SortStableFunc(out, compareRanked)
	return out
}

// RankByDistance orders venues nearest first without scoring them. It is the
// fallback ordering when weather input is unusable.
func RankByDistance(venues []venue.Venue) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	for i, v := range venues {
		out[i] = v.Clone()
		out[i].Score = 0
		out[i].Suitability = ""
		out[i].Breakdown = nil
		out[i].Reasons = nil
	}
	slices.SortStableFunc(out, func(a, b venue.Venue) int {
		if c := cmp.Compare(distanceKey(a.DistanceKm), distanceKey(b.DistanceKm)); c != 0 {
			return c
		}
		return compareIdentity(a, b)
	})
	return out
}

func compareRanked(a, b venue.Venue) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return compareIdentity(a, b)
}

// compareIdentity orders by case-insensitive name with unnamed venues last,
// then by id.
func compareIdentity(a, b venue.Venue) int {
	switch {
	case a.VenueName == nil && b.VenueName != nil:
		return 1
	case a.VenueName != nil && b.VenueName == nil:
		return -1
	case a.VenueName != nil && b.VenueName != nil:
		if c := strings.Compare(strings.ToLower(*a.VenueName), strings.ToLower(*b.VenueName)); c != 0 {
			return c
		}
	}
	return strings.Compare(a.VenueID, b.VenueID)
}

// distanceKey sorts NaN distances last.
func distanceKey(km float64) float64 {
	if math.IsNaN(km) {
		return math.Inf(1)
	}
	return km
}
