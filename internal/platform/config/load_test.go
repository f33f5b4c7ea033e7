package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/config"
)

// environ returns a fixed environment so tests stay independent of the host.
func environ(vars ...string) config.Option {
	base := []string{
		"NOTION_TOKEN=secret_test",
		"NOTION_DATABASE_ID=2046dedbb71681488942efb45cca9a33",
	}
	all := append(base, vars...)
	return config.WithEnviron(func() []string { return all })
}

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", environ())
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Notion.Token != "secret_test" {
		t.Errorf("Notion.Token = %q, want %q", cfg.Notion.Token, "secret_test")
	}
	if cfg.Notion.Version != "2022-06-28" {
		t.Errorf("Notion.Version = %q, want %q", cfg.Notion.Version, "2022-06-28")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod", environ())
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if !cfg.Auth.CookieSecure {
		t.Error("Auth.CookieSecure = false, want true for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", environ())
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Client.BaseURL != "https://api.notion.com" {
		t.Errorf("Client.BaseURL = %q, want Notion API (from base)", cfg.Client.BaseURL)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 3 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 3 (from base)", cfg.Client.RateLimit.RequestsPerSecond)
	}
	if cfg.Items.Properties.Name != "物品名称" {
		t.Errorf("Items.Properties.Name = %q, want %q (from base)", cfg.Items.Properties.Name, "物品名称")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 24h (from base)", cfg.Auth.TokenTTL)
	}
	if cfg.Health.CacheTTL != 30*time.Second || !cfg.Health.SchemaCheck {
		t.Errorf("Health = %+v, want 30s cache with schema check (from base)", cfg.Health)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", environ())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// base.yaml carries no token_secret or password_hash; defaults keep them addressable by env.
	if cfg.Auth.TokenSecret != "" {
		t.Errorf("Auth.TokenSecret = %q, want empty default", cfg.Auth.TokenSecret)
	}
	if !cfg.Items.PublicView {
		t.Error("Items.PublicView = false, want true by default")
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", environ("APP_SERVER_READ_TIMEOUT=15s", "APP_SERVER_PORT=9090"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s (env override)", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", environ(
		"APP_CLIENT_RATE_LIMIT_REQUESTS_PER_SECOND=1.5",
		"APP_ITEMS_PROPERTIES_NOTE=Remarks",
	))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.RateLimit.RequestsPerSecond != 1.5 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 1.5", cfg.Client.RateLimit.RequestsPerSecond)
	}
	if cfg.Items.Properties.Note != "Remarks" {
		t.Errorf("Items.Properties.Note = %q, want %q", cfg.Items.Properties.Note, "Remarks")
	}
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Chdir("../../..")

	tests := []struct {
		name           string
		publicView     string
		wantPublicView bool
	}{
		{name: "false disables", publicView: "false", wantPublicView: false},
		{name: "FALSE disables", publicView: "FALSE", wantPublicView: false},
		{name: "zero disables", publicView: "0", wantPublicView: false},
		{name: "true enables", publicView: "true", wantPublicView: true},
		{name: "anything else enables", publicView: "no", wantPublicView: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("local", environ("ENABLE_PUBLIC_VIEW="+tt.publicView))
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if cfg.Items.PublicView != tt.wantPublicView {
				t.Errorf("Items.PublicView = %v, want %v", cfg.Items.PublicView, tt.wantPublicView)
			}
		})
	}
}

func TestLoad_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", environ("APP_NOTION_TOKEN=secret_prefixed"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Notion.Token != "secret_prefixed" {
		t.Errorf("Notion.Token = %q, want %q", cfg.Notion.Token, "secret_prefixed")
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("local", config.WithEnviron(func() []string { return nil }))
	if !errors.Is(err, config.ErrMissingSecret) {
		t.Fatalf("Load() error = %v, want ErrMissingSecret", err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent", environ())
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_UnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", " ", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }},
		{name: "relative base url", mutate: func(c *config.Config) { c.Client.BaseURL = "api.notion.com" }},
		{name: "negative rate limit", mutate: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }},
		{name: "rate limit without burst", mutate: func(c *config.Config) { c.Client.RateLimit.BurstSize = 0 }},
		{name: "unknown timezone", mutate: func(c *config.Config) { c.Items.Timezone = "Mars/Olympus" }},
		{name: "blank property name", mutate: func(c *config.Config) { c.Items.Properties.PurchasePrice = " " }},
		{name: "duplicate property name", mutate: func(c *config.Config) { c.Items.Properties.Note = c.Items.Properties.Name }},
		{name: "short token ttl", mutate: func(c *config.Config) { c.Auth.TokenTTL = time.Second }},
		{name: "non argon2 hash", mutate: func(c *config.Config) { c.Auth.PasswordHash = "$2b$12$abc" }},
		{name: "negative health cache", mutate: func(c *config.Config) { c.Health.CacheTTL = -time.Second }},
		{name: "negative check timeout", mutate: func(c *config.Config) { c.Health.CheckTimeout = -time.Second }},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
				c.Telemetry.Endpoint = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Notion.DatabaseID = ""

	if err := cfg.Validate(); !errors.Is(err, config.ErrMissingSecret) {
		t.Fatalf("Validate() error = %v, want ErrMissingSecret", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "https://api.notion.com",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 3,
				BurstSize:         3,
			},
		},
		Notion: config.NotionConfig{
			Token:      "secret_test",
			DatabaseID: "2046dedb-b716-8148-8942-efb45cca9a33",
			Version:    "2022-06-28",
		},
		Items: config.ItemsConfig{
			PublicView: true,
			Timezone:   "UTC",
			Properties: config.PropertyNames{
				Name:            "物品名称",
				EntryDate:       "入役日期",
				RetirementDate:  "退役日期",
				PurchasePrice:   "购买价格",
				AdditionalValue: "附加价值",
				Note:            "备注",
				DailyPrice:      "日均价格",
				ServiceDays:     "服役天数",
			},
		},
		Auth: config.AuthConfig{
			Username:   "admin",
			TokenTTL:   time.Hour,
			CookieName: "access_token_cookie",
		},
		Health: config.HealthConfig{
			CacheTTL:     30 * time.Second,
			CheckTimeout: 5 * time.Second,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

func TestItemsConfig_Schema(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Items.Properties.Note = "Remarks"

	schema := cfg.Items.Schema()
	if schema.Note != "Remarks" || schema.Name != "物品名称" {
		t.Errorf("Schema() = %+v, want Note Remarks and default Name", schema)
	}
}
