package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Matching    MatchingConfig `mapstructure:"matching"`
	Mail        MailConfig     `mapstructure:"mail"`
	Intel       IntelConfig    `mapstructure:"intel"`
	Blob        BlobConfig     `mapstructure:"blob"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// MatchingConfig contains the queue engine's policy values. The amount,
// date and confidence thresholds are deliberate business constants with
// production defaults; override only with a documented reason.
type MatchingConfig struct {
	AmountTolerancePercent    float64       `mapstructure:"amountTolerancePercent"`
	DateWindowDays            int           `mapstructure:"dateWindowDays"`
	BodyInvoiceConfidence     float64       `mapstructure:"bodyInvoiceConfidence"`
	RunBudget                 time.Duration `mapstructure:"runBudget"`             // seconds
	InterTransactionDelay     time.Duration `mapstructure:"interTransactionDelay"` // milliseconds
	SweepInterval             time.Duration `mapstructure:"sweepInterval"`         // seconds
	PageSize                  int           `mapstructure:"pageSize"`
	MailSearchMaxResults      int           `mapstructure:"mailSearchMaxResults"`
	MaxQueries                int           `mapstructure:"maxQueries"`
	MaxRetries                int           `mapstructure:"maxRetries"`
	PatternStartingConfidence float64       `mapstructure:"patternStartingConfidence"`
}

// MailConfig contains settings for the remote mailbox API client
type MailConfig struct {
	BaseURL           string        `mapstructure:"baseUrl"`
	MinRequestSpacing time.Duration `mapstructure:"minRequestSpacing"` // milliseconds
	SpacingJitter     time.Duration `mapstructure:"spacingJitter"`     // milliseconds
	RequestTimeout    time.Duration `mapstructure:"requestTimeout"`    // seconds
}

// IntelConfig contains settings for the query-suggestion and
// classification services
type IntelConfig struct {
	BaseURL        string        `mapstructure:"baseUrl"`
	APIKey         string        `mapstructure:"apiKey"`
	Model          string        `mapstructure:"model"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
}

// BlobConfig contains settings for the content-addressable blob store
type BlobConfig struct {
	RootDir string `mapstructure:"rootDir"`
}
