package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (lease duration, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Identity IdentityConfig
	Hold     HoldConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// IdentityConfig configures verification of optional bearer tokens issued by
// the upstream identity service. Token issuance lives outside this service.
type IdentityConfig struct {
	Secret string `envconfig:"IDENTITY_JWT_SECRET" required:"true"`
}

// HoldConfig tunes the lease core.
//
// BookingLookback bounds the booking conflict scan: only bookings starting
// within this window before a candidate interval are considered, so it must be
// at least as long as the longest booking the catalog can produce. Bookings
// longer than the window escape conflict detection.
type HoldConfig struct {
	LeaseDuration      time.Duration `envconfig:"HOLD_LEASE_DURATION" default:"2m"`
	ExtendSeconds      int           `envconfig:"HOLD_EXTEND_SECONDS" default:"90"`
	BookingLookback    time.Duration `envconfig:"HOLD_BOOKING_LOOKBACK" default:"24h"`
	PastStartTolerance time.Duration `envconfig:"HOLD_PAST_START_TOLERANCE" default:"60s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		Identity: IdentityConfig{
			Secret: "test-secret",
		},
		Hold: HoldConfig{
			LeaseDuration:      2 * time.Minute,
			ExtendSeconds:      90,
			BookingLookback:    24 * time.Hour,
			PastStartTolerance: 60 * time.Second,
		},
	}
}
