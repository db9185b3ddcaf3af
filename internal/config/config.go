package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Insecure fallbacks shipped for local development only
const (
	DefaultSecretKey     = "change-me-please"
	DefaultAdminPassword = "admin123"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	// RenderFormat is "html" for the embedded pages or "json" for the page data as JSON
	RenderFormat string `env:"RENDER_FORMAT" envDefault:"html"`
	// TemplatesGlob loads page templates from disk instead of the embedded set
	TemplatesGlob string `env:"TEMPLATES_GLOB"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	URL    string `env:"DATABASE_URL" envDefault:"menu.db"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"debug"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	File   string `env:"LOG_FILE"`
}

// AuthConfig holds the admin password and session cookie settings
type AuthConfig struct {
	SecretKey     string        `env:"SECRET_KEY" envDefault:"change-me-please"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieName    string        `env:"SESSION_COOKIE" envDefault:"menu_session"`
	CookieSecure  bool          `env:"SESSION_SECURE" envDefault:"false"`
}

// UploadConfig holds image upload configuration
type UploadConfig struct {
	Dir string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
	// SweepCron schedules the orphan sweep, seconds precision; empty disables it
	SweepCron  string        `env:"UPLOAD_SWEEP_CRON"`
	SweepGrace time.Duration `env:"UPLOAD_SWEEP_GRACE" envDefault:"1h"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// It's okay if .env file doesn't exist
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the current environment without touching .env files
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	cfg.Server.RenderFormat = strings.ToLower(strings.TrimSpace(cfg.Server.RenderFormat))
	switch cfg.Server.RenderFormat {
	case "html", "json":
	default:
		return nil, fmt.Errorf("unsupported RENDER_FORMAT %q", cfg.Server.RenderFormat)
	}
	if cfg.Auth.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if strings.TrimSpace(cfg.Upload.Dir) == "" {
		return nil, fmt.Errorf("UPLOAD_DIR is required")
	}

	return cfg, nil
}

// InsecureDefaults lists the environment keys still using the shipped fallbacks
func (c *Config) InsecureDefaults() []string {
	var keys []string
	if c.Auth.SecretKey == DefaultSecretKey {
		keys = append(keys, "SECRET_KEY")
	}
	if c.Auth.AdminPassword == DefaultAdminPassword {
		keys = append(keys, "ADMIN_PASSWORD")
	}
	return keys
}

// Origins splits the comma separated CORS origin list
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
