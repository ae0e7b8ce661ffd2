// Package config loads CLI settings from the environment.
//
// Variables use the VECTORIZER_ prefix; a .env file in the working directory
// is loaded first if present. Nested keys use a double underscore, e.g.
// VECTORIZER_API__ID -> api.id. The flat forms VECTORIZER_API_ID and
// VECTORIZER_API_SECRET are accepted too since they are what the service's
// dashboard suggests.
package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "VECTORIZER_"

type Config struct {
	API APIConfig `koanf:"api"`
	Log LogConfig `koanf:"log"`
}

type APIConfig struct {
	ID        string        `koanf:"id" validate:"required"`
	Secret    string        `koanf:"secret" validate:"required"`
	BaseURL   string        `koanf:"base_url" validate:"omitempty,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"gte=0"`
	UserAgent string        `koanf:"user_agent"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// Load reads the environment (and .env, if any) into a validated Config.
func Load() (*Config, error) {
	// A missing .env file is the common case.
	_ = godotenv.Load()
	return load(envPrefix)
}

func load(prefix string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return keyFor(strings.TrimPrefix(s, prefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load environment")
	}

	cfg := &Config{
		Log: LogConfig{Level: "info"},
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	if err := validate(prefix, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks cfg and reports each failure under the environment
// variable that sets it, e.g. "VECTORIZER_API_ID is required".
func validate(prefix string, cfg *Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("koanf")
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "config validation failed")
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, envName(prefix, fe.Namespace())+" "+fieldMessage(fe))
	}
	return errors.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}

// envName maps a namespace like "Config.api.id" to "<prefix>API_ID".
func envName(prefix, namespace string) string {
	_, key, _ := strings.Cut(namespace, ".")
	return prefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

var flatKeys = map[string]string{
	"API_ID":         "api.id",
	"API_SECRET":     "api.secret",
	"BASE_URL":       "api.base_url",
	"TIMEOUT":        "api.timeout",
	"USER_AGENT":     "api.user_agent",
	"LOG_LEVEL":      "log.level",
	"API_BASE_URL":   "api.base_url",
	"API_TIMEOUT":    "api.timeout",
	"API_USER_AGENT": "api.user_agent",
}

func keyFor(name string) string {
	if k, ok := flatKeys[name]; ok {
		return k
	}
	return strings.ToLower(strings.ReplaceAll(name, "__", "."))
}
