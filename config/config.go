package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig
	JWT        JWTConfig

	// Calendar provider credentials
	Google    GoogleConfig
	Microsoft MicrosoftConfig

	Sync SyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type JWTConfig struct {
	Secret string
}

// GoogleConfig holds the Google Calendar OAuth application credentials.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// MicrosoftConfig holds the Microsoft Graph OAuth application credentials.
type MicrosoftConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Tenant       string
}

// SyncConfig controls the event sync window and feed caching.
type SyncConfig struct {
	PastDays     int
	FutureDays   int
	FeedCacheTTL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgURL := viper.GetString("postgres_password"); pgURL != "" {
		cfg.Postgres.Password = pgURL
	}

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	// Google OAuth
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.Google.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.Google.ClientSecret = secret
	}

	// Microsoft OAuth
	cfg.Microsoft.ClientID = viper.GetString("microsoft.client_id")
	cfg.Microsoft.ClientSecret = viper.GetString("microsoft.client_secret")
	cfg.Microsoft.RedirectURL = viper.GetString("microsoft.redirect_url")
	cfg.Microsoft.Tenant = viper.GetString("microsoft.tenant")
	if id := viper.GetString("microsoft_client_id"); id != "" {
		cfg.Microsoft.ClientID = id
	}
	if secret := viper.GetString("microsoft_client_secret"); secret != "" {
		cfg.Microsoft.ClientSecret = secret
	}

	// Sync window
	cfg.Sync.PastDays = viper.GetInt("sync.past_days")
	cfg.Sync.FutureDays = viper.GetInt("sync.future_days")
	cfg.Sync.FeedCacheTTL = viper.GetString("sync.feed_cache_ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "meetsync")
	viper.SetDefault("postgres.database", "meetsync")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("microsoft.tenant", "common")

	// Provider events are mirrored for [-30d, +90d] around now.
	viper.SetDefault("sync.past_days", 30)
	viper.SetDefault("sync.future_days", 90)
	viper.SetDefault("sync.feed_cache_ttl", "5m")
}
