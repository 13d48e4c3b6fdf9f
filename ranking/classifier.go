package ranking

import (
	"math"

	"weathereats/models/weather"
)

// Categories is the set of weather categories active for one observation.
// Cold, Warm and Moderate are exclusive only when the thresholds are well formed.
type Categories struct {
	Cold     bool `json:"cold"`
	Warm     bool `json:"warm"`
	Moderate bool `json:"moderate"`
	Rainy    bool `json:"rainy"`
	Windy    bool `json:"windy"`
}

// Active lists the active category names in a fixed order.
func (c Categories) Active() []string {
	var out []string
	if c.Cold {
		out = append(out, "cold")
	}
	if c.Warm {
		out = append(out, "warm")
	}
	if c.Moderate {
		out = append(out, "moderate")
	}
	if c.Rainy {
		out = append(out, "rainy")
	}
	if c.Windy {
		out = append(out, "windy")
	}
	return out
}

// Classify validates the inputs and evaluates every category rule
// independently. Thresholds are inclusive. Negative precipitation or wind is
// read as zero.
func Classify(obs weather.Observation, prefs weather.Preferences) (Categories, error) {
	if err := validateObservation(obs); err != nil {
		return Categories{}, err
	}
	if err := validatePreferences(prefs); err != nil {
		return Categories{}, err
	}

	precip := math.Max(obs.PrecipitationMmPerHour, 0)
	wind := math.Max(obs.WindSpeedMps, 0)

	c := Categories{
		Cold:  obs.TemperatureC <= prefs.ColdThresholdC,
		Warm:  obs.TemperatureC >= prefs.WarmThresholdC,
		Rainy: precip >= prefs.RainThresholdMmPerHour,
		Windy: wind >= prefs.WindThresholdMps,
	}
	c.Moderate = !c.Cold && !c.Warm
	return c, nil
}

func validateObservation(obs weather.Observation) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"temperature_c", obs.TemperatureC},
		{"precipitation_mm_per_hour", obs.PrecipitationMmPerHour},
		{"wind_speed_mps", obs.WindSpeedMps},
	}
	for _, f := range fields {
		if !finite(f.value) {
			return &InputError{Kind: ErrInvalidWeatherInput, Field: f.name, Value: f.value}
		}
	}
	return nil
}

func validatePreferences(prefs weather.Preferences) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"cold_threshold_c", prefs.ColdThresholdC},
		{"warm_threshold_c", prefs.WarmThresholdC},
		{"rain_threshold_mm_per_hour", prefs.RainThresholdMmPerHour},
		{"wind_threshold_mps", prefs.WindThresholdMps},
	}
	for _, f := range fields {
		if !finite(f.value) {
			return &InputError{Kind: ErrInvalidPreferences, Field: f.name, Value: f.value}
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
