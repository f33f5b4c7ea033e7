package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	// The Notion API allows an average of three requests per second.
	defaultRateLimitRPS   = 3.0
	defaultRateLimitBurst = 3

	defaultNotionVersion = "2022-06-28"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "25s",
		"server.static_dir":      "",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://api.notion.com",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "500ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"notion.token":       "",
		"notion.database_id": "",
		"notion.version":     defaultNotionVersion,

		"items.public_view":                 true,
		"items.timezone":                    "Local",
		"items.properties.name":             "物品名称",
		"items.properties.entry_date":       "入役日期",
		"items.properties.retirement_date":  "退役日期",
		"items.properties.purchase_price":   "购买价格",
		"items.properties.additional_value": "附加价值",
		"items.properties.note":             "备注",
		"items.properties.daily_price":      "日均价格",
		"items.properties.service_days":     "服役天数",

		"auth.username":      "admin",
		"auth.password_hash": "",
		"auth.token_secret":  "",
		"auth.token_ttl":     "24h",
		"auth.cookie_name":   "access_token_cookie",
		"auth.cookie_secure": false,

		"health.cache_ttl":     "30s",
		"health.check_timeout": "5s",
		"health.schema_check":  true,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "item-tracker",
	}
}
