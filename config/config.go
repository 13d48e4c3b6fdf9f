package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"weathereats/models/weather"
)

// ENV_PREFIX is prepended to every variable, e.g. WEATHEREATS_PORT.
const ENV_PREFIX = "WEATHEREATS"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_SEED_RESOURCE = "venues_seed.json"

// Config is loaded once at startup and never modified afterwards.
type Config struct {
	Env      string `envconfig:"ENV" default:"prod" validate:"oneof=prod dev test"`
	Port     string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"redis:6379" validate:"required,hostname_port"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	CatalogSeedPath      string `envconfig:"CATALOG_SEED_PATH"`
	CatalogReloadMinutes int    `envconfig:"CATALOG_RELOAD_MINUTES" default:"60" validate:"gte=0"`

	ScoringWorkers int `envconfig:"SCORING_WORKERS" default:"1" validate:"gte=1,lte=64"`
	MaxResults     int `envconfig:"MAX_RESULTS" default:"30" validate:"gte=1"`

	DefaultColdC   float64 `envconfig:"DEFAULT_COLD_C" default:"5"`
	DefaultWarmC   float64 `envconfig:"DEFAULT_WARM_C" default:"22" validate:"gtfield=DefaultColdC"`
	DefaultRainMmH float64 `envconfig:"DEFAULT_RAIN_MMH" default:"0.5" validate:"gte=0"`
	DefaultWindMps float64 `envconfig:"DEFAULT_WIND_MPS" default:"8" validate:"gte=0"`
}

// Load reads an optional .env file, then the environment, and validates the
// result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ENV_PREFIX, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.CatalogSeedPath == "" {
		cfg.CatalogSeedPath = GetResourcePath(VENUES_SEED_RESOURCE)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// DefaultPreferences are applied to requests that carry no thresholds.
func (c *Config) DefaultPreferences() weather.Preferences {
	return weather.Preferences{
		ColdThresholdC:         c.DefaultColdC,
		WarmThresholdC:         c.DefaultWarmC,
		RainThresholdMmPerHour: c.DefaultRainMmH,
		WindThresholdMps:       c.DefaultWindMps,
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
