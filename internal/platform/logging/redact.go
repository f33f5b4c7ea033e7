package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names whose values never reach a log.
var sensitiveHeaders = []string{"authorization", "cookie", "set-cookie", "x-api-key"}

// IsSensitiveHeader reports whether the named HTTP header carries
// credentials. The comparison ignores case.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

var (
	// sensitiveFields are attribute keys masked regardless of value.
	sensitiveFields = []string{"password", "password_hash", "secret", "token", "token_secret", "session"}

	// sensitivePrefixes catch keys such as secret_key or notion_token_prod.
	sensitivePrefixes = []string{"secret_", "api_key", "notion_token"}

	// sensitiveValues mask credentials embedded in otherwise harmless
	// attributes, e.g. an upstream error message that echoes a header.
	sensitiveValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWT: three base64url segments of at least 10 characters, so
		// version strings like 1.2.3 survive.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		// Notion integration tokens, legacy and current formats.
		regexp.MustCompile(`\b(?:secret|ntn)_[A-Za-z0-9]{20,}`),
		// argon2 PHC strings such as auth.password_hash.
		regexp.MustCompile(`\$argon2(?:id|i|d)\$v=\d+\$[^\s"]+`),
	}
)

// redactor builds the masq ReplaceAttr hook shared by every handler New
// creates.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, f := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(f))
	}
	for _, f := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
