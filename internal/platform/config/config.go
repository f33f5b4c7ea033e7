// Package config provides configuration loading and validation for the service.
// Configuration is loaded from built-in defaults, YAML files and environment
// variables using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> legacy env names -> APP_ env vars.
package config

import (
	"time"
	// Embedded zone database so items.timezone resolves on minimal images.
	_ "time/tzdata"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Notion    NotionConfig    `koanf:"notion"`
	Items     ItemsConfig     `koanf:"items"`
	Auth      AuthConfig      `koanf:"auth"`
	Health    HealthConfig    `koanf:"health"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// StaticDir is served at / when set.
	StaticDir string `koanf:"static_dir"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds outbound HTTP client settings for the Notion API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// NotionConfig identifies the integration credential and the bound database.
type NotionConfig struct {
	Token      string `koanf:"token"`
	DatabaseID string `koanf:"database_id"`
	Version    string `koanf:"version"`
}

// ItemsConfig holds item presentation settings and the display names of the
// database properties backing each item field.
type ItemsConfig struct {
	PublicView bool   `koanf:"public_view"`
	Timezone   string `koanf:"timezone"`

	Properties PropertyNames `koanf:"properties"`
}

// PropertyNames holds the database property display name for each item field.
type PropertyNames struct {
	Name            string `koanf:"name"`
	EntryDate       string `koanf:"entry_date"`
	RetirementDate  string `koanf:"retirement_date"`
	PurchasePrice   string `koanf:"purchase_price"`
	AdditionalValue string `koanf:"additional_value"`
	Note            string `koanf:"note"`
	DailyPrice      string `koanf:"daily_price"`
	ServiceDays     string `koanf:"service_days"`
}

// AuthConfig holds admin login and session settings.
type AuthConfig struct {
	Username     string        `koanf:"username"`
	PasswordHash string        `koanf:"password_hash"`
	TokenSecret  string        `koanf:"token_secret"`
	TokenTTL     time.Duration `koanf:"token_ttl"`
	CookieName   string        `koanf:"cookie_name"`
	CookieSecure bool          `koanf:"cookie_secure"`
}

// HealthConfig controls the checks behind /health/ready and the admin health
// endpoint. SchemaCheck re-reads the bound database on every uncached check.
type HealthConfig struct {
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CheckTimeout time.Duration `koanf:"check_timeout"`
	SchemaCheck  bool          `koanf:"schema_check"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Location resolves the configured item timezone.
func (i *ItemsConfig) Location() (*time.Location, error) {
	if i.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(i.Timezone)
}

// Schema returns the configured display names as an item.Schema.
func (i *ItemsConfig) Schema() item.Schema {
	p := i.Properties
	return item.Schema{
		Name:            p.Name,
		EntryDate:       p.EntryDate,
		RetirementDate:  p.RetirementDate,
		PurchasePrice:   p.PurchasePrice,
		AdditionalValue: p.AdditionalValue,
		Note:            p.Note,
		DailyPrice:      p.DailyPrice,
		ServiceDays:     p.ServiceDays,
	}
}
