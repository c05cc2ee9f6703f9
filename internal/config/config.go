package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Zoho CRM bulk read configuration
	ZohoClientID     string `mapstructure:"ZOHO_CLIENT_ID"`
	ZohoClientSecret string `mapstructure:"ZOHO_CLIENT_SECRET"`
	ZohoRefreshToken string `mapstructure:"ZOHO_REFRESH_TOKEN"`
	ZohoAPIDomain    string `mapstructure:"ZOHO_API_DOMAIN"`
	ZohoAccountsURL  string `mapstructure:"ZOHO_ACCOUNTS_URL"`
	ZohoPollAttempts int    `mapstructure:"ZOHO_POLL_ATTEMPTS"`
	ZohoPollInterval time.Duration `mapstructure:"ZOHO_POLL_INTERVAL"`
	ZohoDownloadDir  string `mapstructure:"ZOHO_DOWNLOAD_DIR"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "lead_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Zoho defaults
	viper.SetDefault("ZOHO_CLIENT_ID", "")
	viper.SetDefault("ZOHO_CLIENT_SECRET", "")
	viper.SetDefault("ZOHO_REFRESH_TOKEN", "")
	viper.SetDefault("ZOHO_API_DOMAIN", "https://www.zohoapis.com")
	viper.SetDefault("ZOHO_ACCOUNTS_URL", "https://accounts.zoho.com/oauth/v2/token")
	viper.SetDefault("ZOHO_POLL_ATTEMPTS", 10)
	viper.SetDefault("ZOHO_POLL_INTERVAL", 5*time.Second)
	viper.SetDefault("ZOHO_DOWNLOAD_DIR", "leads_data")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// HasZohoCredentials reports whether the Zoho bulk read client can be used
func (c *Config) HasZohoCredentials() bool {
	return c.ZohoClientID != "" && c.ZohoClientSecret != "" && c.ZohoRefreshToken != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
