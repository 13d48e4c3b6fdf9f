package ranking

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathereats/models/weather"
)

func TestClassify(t *testing.T) {
	prefs := weather.Preferences{
		ColdThresholdC:         5,
		WarmThresholdC:         22,
		RainThresholdMmPerHour: 0.5,
		WindThresholdMps:       8,
	}

	tests := []struct {
		name  string
		obs   weather.Observation
		prefs weather.Preferences
		want  Categories
	}{
		{
			name:  "cold day",
			obs:   weather.Observation{TemperatureC: 3},
			prefs: prefs,
			want:  Categories{Cold: true},
		},
		{
			name:  "temperature at cold threshold is cold",
			obs:   weather.Observation{TemperatureC: 5},
			prefs: prefs,
			want:  Categories{Cold: true},
		},
		{
			name:  "temperature at warm threshold is warm",
			obs:   weather.Observation{TemperatureC: 22},
			prefs: prefs,
			want:  Categories{Warm: true},
		},
		{
			name:  "mild day is moderate",
			obs:   weather.Observation{TemperatureC: 15},
			prefs: prefs,
			want:  Categories{Moderate: true},
		},
		{
			name:  "cold rainy and windy together",
			obs:   weather.Observation{TemperatureC: 1, PrecipitationMmPerHour: 0.5, WindSpeedMps: 12},
			prefs: prefs,
			want:  Categories{Cold: true, Rainy: true, Windy: true},
		},
		{
			name:  "warm and windy",
			obs:   weather.Observation{TemperatureC: 28, WindSpeedMps: 8},
			prefs: prefs,
			want:  Categories{Warm: true, Windy: true},
		},
		{
			name:  "negative precipitation and wind read as zero",
			obs:   weather.Observation{TemperatureC: 15, PrecipitationMmPerHour: -4, WindSpeedMps: -2},
			prefs: prefs,
			want:  Categories{Moderate: true},
		},
		{
			name: "zero thresholds with clamped negatives",
			obs:  weather.Observation{TemperatureC: 15, PrecipitationMmPerHour: -4, WindSpeedMps: -2},
			prefs: weather.Preferences{
				ColdThresholdC: 5, WarmThresholdC: 22,
			},
			want: Categories{Moderate: true, Rainy: true, Windy: true},
		},
		{
			name: "inverted thresholds activate cold and warm",
			obs:  weather.Observation{TemperatureC: 15},
			prefs: weather.Preferences{
				ColdThresholdC: 20, WarmThresholdC: 10,
				RainThresholdMmPerHour: 1, WindThresholdMps: 10,
			},
			want: Categories{Cold: true, Warm: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.obs, tt.prefs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_RejectsNonFiniteInput(t *testing.T) {
	prefs := weather.DefaultPreferences()

	tests := []struct {
		name  string
		obs   weather.Observation
		prefs weather.Preferences
		kind  error
		field string
	}{
		{
			name:  "NaN temperature",
			obs:   weather.Observation{TemperatureC: math.NaN()},
			prefs: prefs,
			kind:  ErrInvalidWeatherInput,
			field: "temperature_c",
		},
		{
			name:  "infinite precipitation",
			obs:   weather.Observation{PrecipitationMmPerHour: math.Inf(1)},
			prefs: prefs,
			kind:  ErrInvalidWeatherInput,
			field: "precipitation_mm_per_hour",
		},
		{
			name:  "negative infinite wind",
			obs:   weather.Observation{WindSpeedMps: math.Inf(-1)},
			prefs: prefs,
			kind:  ErrInvalidWeatherInput,
			field: "wind_speed_mps",
		},
		{
			name: "NaN warm threshold",
			obs:  weather.Observation{TemperatureC: 10},
			prefs: weather.Preferences{
				ColdThresholdC: 5, WarmThresholdC: math.NaN(),
			},
			kind:  ErrInvalidPreferences,
			field: "warm_threshold_c",
		},
		{
			name: "infinite wind threshold",
			obs:  weather.Observation{TemperatureC: 10},
			prefs: weather.Preferences{
				ColdThresholdC: 5, WarmThresholdC: 22, WindThresholdMps: math.Inf(1),
			},
			kind:  ErrInvalidPreferences,
			field: "wind_threshold_mps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.obs, tt.prefs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestCategoriesActive(t *testing.T) {
	c := Categories{Cold: true, Rainy: true, Windy: true}
	assert.Equal(t, []string{"cold", "rainy", "windy"}, c.Active())
	assert.Empty(t, Categories{}.Active())
}
