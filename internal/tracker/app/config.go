package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Database drivers accepted by DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none" // every database call reports unavailable
)

type Config struct {
	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`

	// PasswordCost is the bcrypt work factor for new digests. Zero means
	// cryptox.DefaultCost.
	PasswordCost int `env:"PASSWORD_COST" envDefault:"12"`

	// FallbackAccountsFile is a YAML list of emergency accounts. Empty uses
	// the built-in admin and standard accounts.
	FallbackAccountsFile string `env:"FALLBACK_ACCOUNTS_FILE"`

	// SeedFile is read by cmd/seed. Empty uses the built-in seed data.
	SeedFile string `env:"SEED_FILE"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`

	// DSN is the postgres connection string.
	DSN string `env:"DSN"`

	// File is the sqlite database path.
	File string `env:"FILE" envDefault:"tracker.db"`

	// QueryTimeout bounds every lookup made by the persistent tier.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`

	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`
}

type Session struct {
	Issuer string        `env:"ISSUER" envDefault:"balco-tracker"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`

	// KeyFile holds a PKCS8 Ed25519 key, created on first start. Empty keeps
	// the key in memory and every session ends on restart.
	KeyFile string `env:"KEY_FILE"`

	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.File == "" {
			return fmt.Errorf("config: DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for the postgres driver")
		}
	case DriverNone:
	default:
		return fmt.Errorf("config: unknown DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	}
	if c.PasswordCost != 0 && (c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost) {
		return fmt.Errorf("config: PASSWORD_COST %d outside [%d, %d]", c.PasswordCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Session.Issuer == "" {
		return fmt.Errorf("config: SESSION_ISSUER must not be empty")
	}
	return nil
}

// SQLiteDSN is the connection string for the configured sqlite file.
func (c Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", c.Database.File)
}
