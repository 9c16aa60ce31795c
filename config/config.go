package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Metrics  MetricsConfig
	Seed     SeedConfig
	Storage  StorageConfig
	Client   ClientConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name      string
	Env       string
	Port      string
	StaticDir string
}

// DatabaseConfig selects the SQL driver and where the data lives.
// Driver is "sqlite3" (Path is used) or "pgx" (URL is used).
type DatabaseConfig struct {
	Driver       string
	Path         string
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

// JWTConfig holds session token settings
type JWTConfig struct {
	Secret       string
	Expiration   time.Duration
	Required     bool
	CookieSecure bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	CORSAllowOrigins []string
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// SeedConfig holds the credentials of the bootstrap user created by -seed
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	AdminRole     string
	DemoRows      int
}

// StorageConfig holds S3-compatible object storage settings used for CSV export archival
type StorageConfig struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// ClientConfig holds settings for shopctl
type ClientConfig struct {
	APIURL  string
	Timeout time.Duration
}

var validDrivers = map[string]bool{"sqlite3": true, "pgx": true}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOP_ prefix (e.g., SHOP_DATABASE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:      v.GetString("app.name"),
			Env:       v.GetString("app.env"),
			Port:      v.GetString("app.port"),
			StaticDir: v.GetString("app.static_dir"),
		},
		Database: DatabaseConfig{
			Driver:       v.GetString("database.driver"),
			Path:         v.GetString("database.path"),
			URL:          v.GetString("database.url"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
			AutoMigrate:  true,
		},
		JWT: JWTConfig{
			Secret:       v.GetString("jwt.secret"),
			Expiration:   v.GetDuration("jwt.expiration"),
			Required:     v.GetBool("jwt.required"),
			CookieSecure: v.GetBool("jwt.cookie_secure"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    v.GetString("metrics.path"),
		},
		Seed: SeedConfig{
			AdminUsername: v.GetString("seed.admin_username"),
			AdminPassword: v.GetString("seed.admin_password"),
			AdminRole:     v.GetString("seed.admin_role"),
			DemoRows:      v.GetInt("seed.demo_rows"),
		},
		Storage: StorageConfig{
			Endpoint:     v.GetString("storage.endpoint"),
			Region:       v.GetString("storage.region"),
			AccessKey:    v.GetString("storage.access_key"),
			SecretKey:    v.GetString("storage.secret_key"),
			UsePathStyle: v.GetBool("storage.use_path_style"),
		},
		Client: ClientConfig{
			APIURL:  v.GetString("client.api_url"),
			Timeout: v.GetDuration("client.timeout"),
		},
	}

	// booleans that default to true can only be switched off explicitly
	if v.IsSet("database.auto_migrate") {
		cfg.Database.AutoMigrate = v.GetBool("database.auto_migrate")
	}
	if v.IsSet("metrics.enabled") {
		cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	}

	// DATABASE_URL is honoured for compatibility with existing .env files
	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv("DATABASE_URL")
	}
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		if allow := strings.TrimSpace(os.Getenv("ALLOW_ORIGINS")); allow != "" {
			for _, origin := range strings.Split(allow, ",") {
				cfg.HTTP.CORSAllowOrigins = append(cfg.HTTP.CORSAllowOrigins, strings.TrimSpace(origin))
			}
		}
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "shop-monitor"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "3000"
	}
	if cfg.App.StaticDir == "" {
		cfg.App.StaticDir = "./public"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite3"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "database/shop.db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.JWT.Secret == "" && cfg.App.Env != "production" {
		cfg.JWT.Secret = "shop-monitor-dev-secret"
	}
	if cfg.JWT.Expiration == 0 {
		cfg.JWT.Expiration = 24 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.IsDevelopment() {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		cfg.HTTP.CORSAllowOrigins = []string{"http://127.0.0.1:5500", "http://localhost:5500", "http://localhost:3000"}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Seed.AdminUsername == "" {
		cfg.Seed.AdminUsername = "admin"
	}
	if cfg.Seed.AdminRole == "" {
		cfg.Seed.AdminRole = "admin"
	}
	if cfg.Seed.DemoRows == 0 {
		cfg.Seed.DemoRows = 20
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	if cfg.Client.APIURL == "" {
		cfg.Client.APIURL = "http://localhost:" + cfg.App.Port
	}
	if cfg.Client.Timeout == 0 {
		cfg.Client.Timeout = 10 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if !validDrivers[c.Database.Driver] {
		return fmt.Errorf("database.driver must be sqlite3 or pgx, got %q", c.Database.Driver)
	}
	if c.Database.Driver == "pgx" && c.Database.URL == "" {
		return fmt.Errorf("database.url (or DATABASE_URL) is required for the pgx driver")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if c.JWT.Secret == "" {
			return fmt.Errorf("jwt.secret is required in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("http.cors_allow_origins cannot be '*' in production")
			}
		}
	}

	return nil
}

// IsDevelopment reports whether the app runs outside production
func (c *Config) IsDevelopment() bool {
	return c.App.Env != "production"
}

// DataSource returns the driver-specific connection string
func (d *DatabaseConfig) DataSource() string {
	if d.Driver == "pgx" {
		return d.URL
	}
	return d.Path
}
