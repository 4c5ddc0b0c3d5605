package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/service"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Host string `env:"HOST"`                   // listen host, empty for all interfaces
	Port int    `env:"PORT" envDefault:"3000"` // HTTP port

	Env       string `env:"ENV" envDefault:"development"` // development, production, test
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	JWTSecret    string        `env:"JWT_SECRET"`                      // required
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"90d"` // token lifetime, accepts a d suffix
	APIKey       string        `env:"API_KEY"`                         // empty disables the x-api-key gate
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`

	StoreDriver   string `env:"STORE_DRIVER"` // sqlite or mongo; mongo when MONGO_URI is set
	DatabaseFile  string `env:"DATABASE_FILE" envDefault:"bookshelf.db"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"bookshelf"`

	StaticDir           string        `env:"STATIC_DIR"` // served under /public/ when set
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: read .env: %w", service.ErrConfiguration, err)
	}
	return parseConfig(env.Options{})
}

// LoadConfigFrom parses cfg from environ only, ignoring the process
// environment and any .env file.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: environ})
}

func parseConfig(opts env.Options) (Config, error) {
	opts.FuncMap = map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(time.Duration(0)): func(v string) (any, error) { return ParseDuration(v) },
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %w", service.ErrConfiguration, err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverSQLite
		if cfg.MongoURI != "" {
			cfg.StoreDriver = DriverMongo
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting the process cannot start with.
func (c Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return service.ErrMissingSecret
	case c.Port < 0 || c.Port > 65535:
		return fmt.Errorf("%w: PORT %d out of range", service.ErrConfiguration, c.Port)
	case c.JWTExpiresIn <= 0:
		return fmt.Errorf("%w: JWT_EXPIRES_IN must be positive", service.ErrConfiguration)
	case c.BcryptCost < bcrypt.DefaultCost || c.BcryptCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: BCRYPT_COST must be between %d and %d", service.ErrConfiguration, bcrypt.DefaultCost, bcrypt.MaxCost)
	}

	switch c.StoreDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("%w: DATABASE_FILE is empty", service.ErrConfiguration)
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("%w: MONGO_URI is required for the mongo driver", service.ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", service.ErrConfiguration, c.StoreDriver)
	}
	return nil
}

func (c Config) IsProduction() bool { return c.Env == "production" }

func (c Config) Addr() string { return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) }

// ParseDuration accepts time.ParseDuration syntax, a whole or fractional
// number of days such as "90d", or bare seconds such as "3600".
func ParseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", v)
		}
		return time.Duration(n * float64(24*time.Hour)), nil
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", v)
	}
	return d, nil
}
