package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// legacyEnv maps the unprefixed variable names used by earlier deployments
// to their koanf keys. APP_ variables still take precedence over them.
var legacyEnv = map[string]string{
	"NOTION_TOKEN":       "notion.token",
	"NOTION_DATABASE_ID": "notion.database_id",
	"ENABLE_PUBLIC_VIEW": "items.public_view",
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	environ   func() []string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithEnviron replaces os.Environ as the source of environment variables.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// Load resolves the configuration for profile from five layers, later ones
// winning:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. unprefixed legacy variables (NOTION_TOKEN, NOTION_DATABASE_ID, ENABLE_PUBLIC_VIEW)
//  5. APP_ variables
//
// APP_ names are matched against the keys loaded so far, so underscores
// inside a field name survive:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_NOTION_DATABASE_ID        -> notion.database_id
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for _, l := range o.layers(profile) {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

func (o *loadOptions) layers(profile string) []layer {
	yamlFile := func(name string) layer {
		path := filepath.Join(o.configDir, name)
		return layer{name: path, load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		}}
	}

	return []layer{
		{name: "defaults", load: func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(defaults(), "."), nil)
		}},
		yamlFile("base.yaml"),
		yamlFile(profile + ".yaml"),
		{name: "legacy env vars", load: func(k *koanf.Koanf) error {
			return k.Load(env.Provider(".", env.Opt{
				EnvironFunc:   o.environ,
				TransformFunc: legacyKey,
			}), nil)
		}},
		{name: "env vars", load: func(k *koanf.Koanf) error {
			// Built here so the lookup sees every key the earlier layers set.
			lookup := buildEnvLookup(k.Keys())
			return k.Load(env.Provider(".", env.Opt{
				Prefix:      envPrefix,
				EnvironFunc: o.environ,
				TransformFunc: func(key, value string) (string, any) {
					key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
					if koanfKey, ok := lookup[key]; ok {
						return koanfKey, value
					}
					return strings.ReplaceAll(key, "_", "."), value
				},
			}), nil)
		}},
	}
}

// legacyKey maps an unprefixed variable to its koanf key. Unknown names
// return an empty key, which koanf skips.
func legacyKey(key, value string) (string, any) {
	koanfKey, ok := legacyEnv[key]
	switch {
	case !ok:
		return "", nil
	case koanfKey == "items.public_view":
		return koanfKey, parsePublicView(value)
	default:
		return koanfKey, value
	}
}

// parsePublicView treats every value except "false" and "0" as enabled.
func parsePublicView(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0":
		return false
	default:
		return true
	}
}

// validateProfile rejects names that are empty or could escape configDir.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the underscore form of each koanf key back to the key,
// e.g. "server_read_timeout" to "server.read_timeout".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
