package app

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process configuration, populated from the environment.
type Config struct {
	Issuer string `env:"CATALOG_ISSUER,default=catalog-admin"`

	DatabaseFile string `env:"CATALOG_DATABASE_FILE,default=catalog.db"`
	PepperFile   string `env:"CATALOG_PEPPER_FILE,default=pepper"`

	Env       string `env:"ENV,default=dev"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
	Port      int    `env:"PORT,default=8080"`

	// SecureCookies marks session cookies Secure. Disable only for local
	// plain-http development.
	SecureCookies bool `env:"CATALOG_SECURE_COOKIES,default=true"`

	MaxFailedAttempts int           `env:"CATALOG_MAX_FAILED_ATTEMPTS,default=5"`
	LockoutDuration   time.Duration `env:"CATALOG_LOCKOUT_DURATION,default=15m"`
	TokenTTL          time.Duration `env:"CATALOG_TOKEN_TTL,default=15m"`
	SessionTTL        time.Duration `env:"CATALOG_SESSION_TTL,default=12h"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD,default=10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL,default=1h"`

	// Bootstrap admin, seeded only when the database is empty.
	AdminName     string `env:"CATALOG_ADMIN_NAME,default=Administrator"`
	AdminEmail    string `env:"CATALOG_ADMIN_EMAIL"`
	AdminPassword string `env:"CATALOG_ADMIN_PASSWORD"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
