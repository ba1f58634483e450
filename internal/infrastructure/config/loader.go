package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Don't return error, just log it or continue
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix("RM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Non-critical server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Database defaults for non-sensitive settings
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.queryTimeout", 10)    // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")

	// Matching engine defaults. The thresholds are the production business
	// constants: 5% amount tolerance, ±30 day window, 0.7 body confidence.
	v.SetDefault("matching.amountTolerancePercent", 5.0)
	v.SetDefault("matching.dateWindowDays", 30)
	v.SetDefault("matching.bodyInvoiceConfidence", 0.7)
	v.SetDefault("matching.runBudget", 180)            // seconds
	v.SetDefault("matching.interTransactionDelay", 150) // milliseconds
	v.SetDefault("matching.sweepInterval", 30)          // seconds
	v.SetDefault("matching.pageSize", 25)
	v.SetDefault("matching.mailSearchMaxResults", 10)
	v.SetDefault("matching.maxQueries", 6)
	v.SetDefault("matching.maxRetries", 3)
	v.SetDefault("matching.patternStartingConfidence", 0.6)

	// Mail client defaults
	v.SetDefault("mail.minRequestSpacing", 250) // milliseconds
	v.SetDefault("mail.spacingJitter", 150)     // milliseconds
	v.SetDefault("mail.requestTimeout", 20)     // seconds

	// Intel client defaults
	v.SetDefault("intel.model", "gpt-4o-mini")
	v.SetDefault("intel.requestTimeout", 30) // seconds

	// Blob store defaults
	v.SetDefault("blob.rootDir", "./data/blobs")
}

// getEnvironment determines the environment to use based on RM_ENV
func getEnvironment() string {
	env := os.Getenv("RM_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	// Database sensitive information
	if dbHost := os.Getenv("RM_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("RM_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("RM_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("RM_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("RM_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("RM_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}

	// Server settings
	if serverHost := os.Getenv("RM_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("RM_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	// Logger settings
	if logLevel := os.Getenv("RM_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	// External service credentials
	if mailURL := os.Getenv("RM_MAIL_BASE_URL"); mailURL != "" {
		v.Set("mail.baseUrl", mailURL)
	}
	if intelURL := os.Getenv("RM_INTEL_BASE_URL"); intelURL != "" {
		v.Set("intel.baseUrl", intelURL)
	}
	if intelKey := os.Getenv("RM_INTEL_API_KEY"); intelKey != "" {
		v.Set("intel.apiKey", intelKey)
	}
	if blobRoot := os.Getenv("RM_BLOB_ROOT_DIR"); blobRoot != "" {
		v.Set("blob.rootDir", blobRoot)
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second

	config.Matching.RunBudget = time.Duration(config.Matching.RunBudget) * time.Second
	config.Matching.InterTransactionDelay = time.Duration(config.Matching.InterTransactionDelay) * time.Millisecond
	config.Matching.SweepInterval = time.Duration(config.Matching.SweepInterval) * time.Second

	config.Mail.MinRequestSpacing = time.Duration(config.Mail.MinRequestSpacing) * time.Millisecond
	config.Mail.SpacingJitter = time.Duration(config.Mail.SpacingJitter) * time.Millisecond
	config.Mail.RequestTimeout = time.Duration(config.Mail.RequestTimeout) * time.Second

	config.Intel.RequestTimeout = time.Duration(config.Intel.RequestTimeout) * time.Second
}
