package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid Gemini API key format: too short")
		}
	}

	return nil
}

func validateOneOf(value, name string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", name, value, strings.Join(allowed, ", "))
}

func (sc ServerConfig) validate(name string) error {
	if sc.Port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	if err := ValidateTimeout(sc.ReadTimeout, name+" read"); err != nil {
		return err
	}
	if err := ValidateTimeout(sc.WriteTimeout, name+" write"); err != nil {
		return err
	}
	return ValidateTimeout(sc.IdleTimeout, name+" idle")
}

// Validate checks everything the app server and the transcribe command need.
// It returns the first problem found.
func (c *Config) Validate() error {
	// A custom base URL points at a compatible gateway with its own key scheme.
	if c.OpenAI.BaseURL == "" {
		if err := ValidateAPIKey(c.OpenAI.APIKey, "OpenAI"); err != nil {
			return fmt.Errorf("OPENAI_API_KEY: %w", err)
		}
	} else if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY: OpenAI API key is required")
	}

	if err := validateOneOf(c.TranslationProvider, "TRANSLATION_PROVIDER", "openai", "gemini"); err != nil {
		return err
	}
	if c.TranslationProvider == "gemini" {
		if err := ValidateAPIKey(c.Gemini.APIKey, "Gemini"); err != nil {
			return fmt.Errorf("GEMINI_API_KEY: %w", err)
		}
	}

	if c.Storage.Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required")
	}
	if c.Storage.Endpoint == "" {
		return fmt.Errorf("S3_ENDPOINT is required")
	}

	if err := validateOneOf(c.Database.Driver, "DB_DRIVER", "sqlite3", "postgres"); err != nil {
		return err
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if err := validateOneOf(c.Session.Store, "SESSION_STORE", "memory", "redis"); err != nil {
		return err
	}
	if c.Session.Store == "redis" && c.Session.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when SESSION_STORE=redis")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return c.Server.validate("server")
}
