package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Auth      AuthConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Roster    RosterConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`
}

// StorageConfig selects the appointment backend: "localstore" (a single JSON
// file, the default) or "sqlite".
type StorageConfig struct {
	Backend string `mapstructure:"backend" envconfig:"STORAGE_BACKEND"`
	Path    string `mapstructure:"path" envconfig:"STORAGE_PATH"`
}

// AuthConfig carries the demo staff credential and session behavior.
type AuthConfig struct {
	Email      string        `mapstructure:"email" envconfig:"AUTH_EMAIL"`
	Password   string        `mapstructure:"password" envconfig:"AUTH_PASSWORD"`
	LoginDelay time.Duration `mapstructure:"login_delay" envconfig:"AUTH_LOGIN_DELAY"`
	SessionTTL time.Duration `mapstructure:"session_ttl" envconfig:"AUTH_SESSION_TTL"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret" envconfig:"JWT_SECRET"`
	Expiry time.Duration `mapstructure:"expiry" envconfig:"JWT_EXPIRY"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

// RosterConfig optionally points at a JSON file overriding the compiled-in
// patient/doctor/time-slot tables.
type RosterConfig struct {
	File string `mapstructure:"file" envconfig:"ROSTER_FILE"`
}

// LoadConfig reads config.yaml (optional; defaults apply without it), then
// overlays CALENDAR_* environment variables.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("calendar", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdown_timeout", 5*time.Second)
	viper.SetDefault("storage.backend", "localstore")
	viper.SetDefault("storage.path", "data/appointments.json")
	viper.SetDefault("auth.email", "staff@clinic.com")
	viper.SetDefault("auth.password", "123456")
	viper.SetDefault("auth.login_delay", time.Second)
	viper.SetDefault("auth.session_ttl", 24*time.Hour)
	viper.SetDefault("jwt.secret", "local-dev-secret")
	viper.SetDefault("jwt.expiry", 24*time.Hour)
	viper.SetDefault("ratelimit.rps", 50.0)
	viper.SetDefault("ratelimit.burst", 100)
}
