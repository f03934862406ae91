package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultAccessSecret  = "your-very-strong-access-secret"
	defaultRefreshSecret = "your-very-strong-refresh-secret"
)

type AppConfig struct {
	Env            string     `env:"APP_ENV"              envDefault:"development"`
	Port           string     `env:"PORT"                 envDefault:"8088"`
	LogLevel       slog.Level `env:"LOG_LEVEL"            envDefault:"INFO"`
	AllowedOrigins []string   `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	BcryptCost     int        `env:"BCRYPT_COST"          envDefault:"12"`
}

type DBConfig struct {
	Driver     string `env:"DB_DRIVER"      envDefault:"postgres"`
	Host       string `env:"DB_HOST"        envDefault:"localhost"`
	Port       string `env:"DB_PORT"        envDefault:"5432"`
	User       string `env:"DB_USER"        envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"    envDefault:"password"`
	Name       string `env:"DB_NAME"        envDefault:"questboard"`
	SSLMode    string `env:"DB_SSLMODE"     envDefault:"disable"`
	TimeZone   string `env:"DB_TIMEZONE"    envDefault:"UTC"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"questboard.db"`
}

type JWTConfig struct {
	AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"         envDefault:"your-very-strong-access-secret"`
	AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"15"`
	RefreshTokenSecret       string `env:"JWT_REFRESH_TOKEN_SECRET"        envDefault:"your-very-strong-refresh-secret"`
	RefreshTokenExpiryDays   int    `env:"JWT_REFRESH_TOKEN_EXPIRY_DAYS"   envDefault:"7"`
	Issuer                   string `env:"JWT_ISSUER"                      envDefault:"questboard"`
}

// RedisConfig is optional. When URL is empty revoked refresh tokens are
// tracked in the database instead.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Config struct {
	App   AppConfig
	DB    DBConfig
	JWT   JWTConfig
	Redis RedisConfig
}

// Global DB instance, accessible after Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads an optional .env file and parses the environment into Config.
func LoadConfig() (*Config, error) {
	// The .env file is optional; in production the variables are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWT.AccessTokenSecret == defaultAccessSecret || cfg.JWT.RefreshTokenSecret == defaultRefreshSecret {
		log.Println("WARNING: Using default JWT secrets. Please set JWT_ACCESS_TOKEN_SECRET and JWT_REFRESH_TOKEN_SECRET environment variables for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == EnvProduction {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.JWT.AccessTokenSecret == "" || c.JWT.RefreshTokenSecret == "" {
		return errors.New("jwt secrets must not be empty")
	}
	if c.JWT.AccessTokenExpiryMinutes <= 0 {
		return fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %d", c.JWT.AccessTokenExpiryMinutes)
	}
	if c.JWT.RefreshTokenExpiryDays <= 0 {
		return fmt.Errorf("invalid JWT_REFRESH_TOKEN_EXPIRY_DAYS: %d", c.JWT.RefreshTokenExpiryDays)
	}
	return nil
}

// Initialize loads the configuration and connects to the database once.
// Call it at the start of main.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		gormDB, err := ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
		DB = gormDB
	})
	return loadErr
}

// GetConfig returns the configuration loaded by Initialize.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
