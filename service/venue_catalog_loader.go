package services

import (
	"fmt"
	"log/slog"
	"time"

	"weathereats/geo"
	"weathereats/models/venue"
	"weathereats/util"
)

// VenueStore persists catalog venues.
type VenueStore interface {
	UpsertVenue(v venue.Venue) error
	DeleteVenue(id string) error
	ListAllVenueIDs() ([]string, error)
}

// VenueCatalogLoader seeds the venue store from a JSON catalog file and can
// reload it periodically.
type VenueCatalogLoader struct {
	store    VenueStore
	seedPath string
	metrics  *RankingMetrics
	logger   *slog.Logger
}

// NewVenueCatalogLoader constructs a loader. metrics may be nil.
func NewVenueCatalogLoader(store VenueStore, seedPath string, metrics *RankingMetrics, logger *slog.Logger) *VenueCatalogLoader {
	return &VenueCatalogLoader{
		store:    store,
		seedPath: seedPath,
		metrics:  metrics,
		logger:   logger.With("component", "VenueCatalogLoader"),
	}
}

// Load reads the seed file, upserts every valid, non-duplicate venue and
// removes stored venues that are no longer listed. It returns the number of
// venues stored. Individual upsert and delete failures are logged and skipped.
func (l *VenueCatalogLoader) Load() (int, error) {
	seeds, err := util.ReadVenueSeedsFromJSON(l.seedPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read venue catalog: %w", err)
	}
	l.logger.Info("loading venue catalog", "path", l.seedPath, "records", len(seeds))

	seen := make(map[string]struct{}, len(seeds))
	stored := 0
	for _, s := range seeds {
		if s.ID == "" {
			l.logger.Warn("skipping venue without id", "name", s.Name)
			continue
		}
		if _, dup := seen[s.ID]; dup {
			l.logger.Debug("skipping duplicate venue", "id", s.ID)
			continue
		}
		if !(geo.Point{Lat: s.Lat, Lon: s.Lng}).Valid() {
			l.logger.Warn("skipping venue with invalid coordinates", "id", s.ID, "lat", s.Lat, "lng", s.Lng)
			continue
		}
		seen[s.ID] = struct{}{}

		v := s.ToVenue()
		l.logUnknownTags(v)
		if err := l.store.UpsertVenue(v); err != nil {
			l.logger.Error("upsert failed", "id", s.ID, "error", err)
			continue
		}
		stored++
	}

	pruned := l.prune(seen)

	l.metrics.setCatalogVenues(stored)
	l.logger.Info("venue catalog loaded", "stored", stored, "pruned", pruned)
	return stored, nil
}

// prune deletes stored venues whose id is not in keep.
func (l *VenueCatalogLoader) prune(keep map[string]struct{}) int {
	ids, err := l.store.ListAllVenueIDs()
	if err != nil {
		l.logger.Error("failed to list stored venues, skipping prune", "error", err)
		return 0
	}
	pruned := 0
	for _, id := range ids {
		if _, ok := keep[id]; ok {
			continue
		}
		if err := l.store.DeleteVenue(id); err != nil {
			l.logger.Error("delete failed", "id", id, "error", err)
			continue
		}
		pruned++
	}
	return pruned
}

// logUnknownTags reports tags outside the scoring vocabulary. They are kept
// but never add to a score.
func (l *VenueCatalogLoader) logUnknownTags(v venue.Venue) {
	var cuisines, amenities []string
	for _, t := range v.CuisineTags {
		if !venue.Cuisine(t).Known() {
			cuisines = append(cuisines, t)
		}
	}
	for _, f := range v.AmenityFlags {
		if !venue.Amenity(f).Known() {
			amenities = append(amenities, f)
		}
	}
	if len(cuisines) > 0 || len(amenities) > 0 {
		l.logger.Debug("venue has unscored tags", "id", v.VenueID, "cuisine", cuisines, "amenity", amenities)
	}
}

// StartPeriodicJob launches the background reload loop at the given interval.
// A non-positive interval disables reloading.
func (l *VenueCatalogLoader) StartPeriodicJob(interval time.Duration) {
	if interval <= 0 {
		l.logger.Info("periodic catalog reload disabled")
		return
	}
	go l.startPeriodicJob(interval)
}

func (l *VenueCatalogLoader) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		l.logger.Info("running periodic catalog reload")
		if _, err := l.Load(); err != nil {
			l.logger.Error("catalog reload failed", "error", err)
		}
	}
}
