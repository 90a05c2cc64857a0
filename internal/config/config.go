package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string        `mapstructure:"DB_SOURCE"`
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	GeocoderURL   string        `mapstructure:"GEOCODER_URL"`
	RouterURL     string        `mapstructure:"ROUTER_URL"`
	RouterProfile string        `mapstructure:"ROUTER_PROFILE"`
	RouterAPIKey  string        `mapstructure:"ROUTER_API_KEY"`
	UserAgent     string        `mapstructure:"USER_AGENT"`
	HTTPTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
	PricePerKm    int           `mapstructure:"PRICE_PER_KM"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	LogPretty     bool          `mapstructure:"LOG_PRETTY"`
	ServiceName   string        `mapstructure:"SERVICE_NAME"`
	JaegerURL     string        `mapstructure:"JAEGER_ENDPOINT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":  "0.0.0.0:8080",
	"GEOCODER_URL":    "https://www.geocoding.jp/api/",
	"ROUTER_URL":      "https://api.openrouteservice.org",
	"ROUTER_PROFILE":  "driving-car",
	"USER_AGENT":      "moving-estimate-api/1.0",
	"HTTP_TIMEOUT":    "0s",
	"PRICE_PER_KM":    100,
	"LOG_LEVEL":       "info",
	"LOG_PRETTY":      false,
	"SERVICE_NAME":    "moving-estimate-api",
	"JAEGER_ENDPOINT": "",
	"DB_SOURCE":       "",
	"ROUTER_API_KEY":  "",
}

// LoadConfig reads app.env from path. Environment variables (including a local .env) override it.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional; a missing file is not an error
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}
	return config, nil
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.DBSource) == "" {
		missing = append(missing, "DB_SOURCE")
	}
	if strings.TrimSpace(c.RouterAPIKey) == "" {
		missing = append(missing, "ROUTER_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}
	if c.PricePerKm < 0 {
		return fmt.Errorf("config: PRICE_PER_KM must be non-negative, got %d", c.PricePerKm)
	}
	return nil
}
