package weather

// Observation is a unit-normalized weather snapshot for a point.
type Observation struct {
	TemperatureC           float64 `json:"temperature_c"`
	PrecipitationMmPerHour float64 `json:"precipitation_mm_per_hour"`
	WindSpeedMps           float64 `json:"wind_speed_mps"`
	// ConditionLabel is informational ("Clear", "Rain") and never scored.
	ConditionLabel string `json:"condition_label,omitempty"`
}

// Preferences are the user-tunable thresholds used to classify weather.
type Preferences struct {
	ColdThresholdC         float64 `json:"cold_threshold_c"`
	WarmThresholdC         float64 `json:"warm_threshold_c"`
	RainThresholdMmPerHour float64 `json:"rain_threshold_mm_per_hour"`
	WindThresholdMps       float64 `json:"wind_threshold_mps"`
}

// Default thresholds applied when a caller supplies no preferences.
const (
	DefaultColdThresholdC         = 5.0
	DefaultWarmThresholdC         = 22.0
	DefaultRainThresholdMmPerHour = 0.5
	DefaultWindThresholdMps       = 8.0
)

func DefaultPreferences() Preferences {
	return Preferences{
		ColdThresholdC:         DefaultColdThresholdC,
		WarmThresholdC:         DefaultWarmThresholdC,
		RainThresholdMmPerHour: DefaultRainThresholdMmPerHour,
		WindThresholdMps:       DefaultWindThresholdMps,
	}
}

// Degenerate reports whether the warm threshold does not lie above the cold
// one, in which case cold and warm can both be active.
func (p Preferences) Degenerate() bool {
	return p.WarmThresholdC <= p.ColdThresholdC
}

// PreferenceOverrides are caller-supplied thresholds. A nil field keeps the
// base value, so a request may tune a single threshold.
type PreferenceOverrides struct {
	ColdThresholdC         *float64 `json:"cold_threshold_c,omitempty"`
	WarmThresholdC         *float64 `json:"warm_threshold_c,omitempty"`
	RainThresholdMmPerHour *float64 `json:"rain_threshold_mm_per_hour,omitempty"`
	WindThresholdMps       *float64 `json:"wind_threshold_mps,omitempty"`
}

// Apply returns base with every set field replaced. A nil receiver returns base.
func (o *PreferenceOverrides) Apply(base Preferences) Preferences {
	if o == nil {
		return base
	}
	p := base
	if o.ColdThresholdC != nil {
		p.ColdThresholdC = *o.ColdThresholdC
	}
	if o.WarmThresholdC != nil {
		p.WarmThresholdC = *o.WarmThresholdC
	}
	if o.RainThresholdMmPerHour != nil {
		p.RainThresholdMmPerHour = *o.RainThresholdMmPerHour
	}
	if o.WindThresholdMps != nil {
		p.WindThresholdMps = *o.WindThresholdMps
	}
	return p
}

// Overrides returns p as a full set of overrides.
func (p Preferences) Overrides() *PreferenceOverrides {
	return &PreferenceOverrides{
		ColdThresholdC:         &p.ColdThresholdC,
		WarmThresholdC:         &p.WarmThresholdC,
		RainThresholdMmPerHour: &p.RainThresholdMmPerHour,
		WindThresholdMps:       &p.WindThresholdMps,
	}
}
