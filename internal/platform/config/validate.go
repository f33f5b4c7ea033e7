package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// ErrMissingSecret is returned when a required credential is empty.
var ErrMissingSecret = errors.New("missing required secret")

// Validate checks every section and joins all problems into one error so an
// operator sees the full list at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Notion.validate(),
		c.Items.validate(),
		c.Auth.validate(),
		c.Health.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	return errors.Join(
		oneOf("log.level", l.Level, "debug", "info", "warn", "error"),
		oneOf("log.format", l.Format, "json", "text"),
	)
}

// oneOf reports an error naming key when got is not among allowed.
func oneOf(key, got string, allowed ...string) error {
	if slices.Contains(allowed, got) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	} else if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.base_url must be an absolute URL, got %q", cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (n *NotionConfig) validate() error {
	var errs []error

	if strings.TrimSpace(n.Token) == "" {
		errs = append(errs, fmt.Errorf("%w: notion.token (NOTION_TOKEN)", ErrMissingSecret))
	}
	if strings.TrimSpace(n.DatabaseID) == "" {
		errs = append(errs, fmt.Errorf("%w: notion.database_id (NOTION_DATABASE_ID)", ErrMissingSecret))
	}
	if n.Version == "" {
		errs = append(errs, errors.New("notion.version must not be empty"))
	}

	return errors.Join(errs...)
}

func (i *ItemsConfig) validate() error {
	var errs []error

	if _, err := i.Location(); err != nil {
		errs = append(errs, fmt.Errorf("items.timezone: %w", err))
	}

	if err := i.Schema().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("items.properties: %w", err))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if a.TokenTTL < time.Minute {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be at least 1m, got %v", a.TokenTTL))
	}
	if a.CookieName == "" {
		errs = append(errs, errors.New("auth.cookie_name must not be empty"))
	}
	if a.PasswordHash != "" && !strings.HasPrefix(a.PasswordHash, "$argon2id$") {
		errs = append(errs, errors.New("auth.password_hash must be an argon2id PHC string"))
	}

	return errors.Join(errs...)
}

func (h *HealthConfig) validate() error {
	var errs []error

	if h.CacheTTL < 0 {
		errs = append(errs, errors.New("health.cache_ttl must not be negative"))
	}
	if h.CheckTimeout < 0 {
		errs = append(errs, errors.New("health.check_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	err := oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" && t.Endpoint == "" {
		err = errors.Join(err, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	return err
}
