package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"weathereats/models"
	"weathereats/models/venue"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadVenueSeedsFromJSON(t *testing.T) {
	content := `[
		{
			"id": "node-1",
			"name": "Soup Place",
			"lat": 60.17,
			"lng": 24.94,
			"cuisine": "Soup;thai",
			"tags": {"outdoor_seating": "no", "roof": "yes"}
		},
		{
			"id": "node-2",
			"lat": 60.18,
			"lng": 24.95
		}
	]`
	path := createTempFile(t, content)

	seeds, err := ReadVenueSeedsFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("Expected 2 seeds, got %d", len(seeds))
	}
	if seeds[0].Name == nil || *seeds[0].Name != "Soup Place" {
		t.Errorf("Expected name 'Soup Place', got %v", seeds[0].Name)
	}
	if seeds[1].Name != nil {
		t.Errorf("Expected null name, got %q", *seeds[1].Name)
	}

	v := seeds[0].ToVenue()
	if len(v.CuisineTags) != 2 || v.CuisineTags[0] != "soup" || v.CuisineTags[1] != "thai" {
		t.Errorf("Unexpected cuisine tags %v", v.CuisineTags)
	}
	if len(v.AmenityFlags) != 1 || v.AmenityFlags[0] != "covered" {
		t.Errorf("Unexpected amenity flags %v", v.AmenityFlags)
	}
}

func TestReadRankRequestFromJSON(t *testing.T) {
	content := `{
		"venues": [{"id": "a", "name": null, "distance_km": 0.5, "cuisine_tags": ["soup"]}],
		"weather": {"temperature_c": 3, "precipitation_mm_per_hour": 0, "wind_speed_mps": 2},
		"limit": 10
	}`
	path := createTempFile(t, content)

	req, err := ReadRankRequestFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(req.Venues) != 1 || req.Venues[0].VenueID != "a" {
		t.Fatalf("Unexpected venues %+v", req.Venues)
	}
	if req.Preferences != nil {
		t.Errorf("Expected nil preferences when omitted")
	}
	if req.Weather.TemperatureC != 3 || req.Limit != 10 {
		t.Errorf("Unexpected request %+v", req)
	}
}

func TestReadVenueSeedsFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadVenueSeedsFromJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestWriteJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	in := models.RankRequest{
		Venues: []venue.Venue{{VenueID: "x", VenueName: venue.Name("X"), DistanceKm: 1.5}},
		Limit:  4,
	}
	if err := WriteJSONFile(path, in); err != nil {
		t.Fatalf("WriteJSONFile failed: %v", err)
	}
	out, err := ReadRankRequestFromJSON(path)
	if err != nil {
		t.Fatalf("ReadRankRequestFromJSON failed: %v", err)
	}
	if len(out.Venues) != 1 || out.Venues[0].VenueID != "x" || out.Venues[0].DistanceKm != 1.5 || out.Limit != 4 {
		t.Errorf("Unexpected request %+v", out)
	}
}

func TestPlotRankingScores(t *testing.T) {
	venues := []venue.Venue{
		{VenueID: "a", VenueName: venue.Name("Alpha"), Breakdown: &venue.ScoreBreakdown{Distance: 0.3, Amenity: 0.1, Cuisine: 0.2}},
		{VenueID: "b"},
	}
	var buf bytes.Buffer
	if err := PlotRankingScores(venues, "cold, rainy", &buf); err != nil {
		t.Fatalf("PlotRankingScores failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Alpha")) {
		t.Errorf("Expected chart to mention venue name")
	}
}

func TestPrintRankingPartially(t *testing.T) {
	resp := &models.RankingResponse{
		Ranked: true,
		Total:  1,
		Venues: []venue.Venue{{VenueID: "1", VenueName: venue.Name("Test Venue")}},
	}

	// Only checks that printing does not panic.
	PrintRankingPartially(resp, 5)
}
