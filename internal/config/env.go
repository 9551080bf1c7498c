package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"s3-audio-translate/internal/app/language"
)

// OpenAIConfig configures transcription and the default translator
type OpenAIConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	ChatModel string `yaml:"chat_model"`
}

// GeminiConfig configures the alternative translator
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// StorageConfig describes the S3-compatible bucket holding the audio files
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Prefix    string `yaml:"prefix"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// DatabaseConfig selects the credential store
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// SessionConfig selects where per-interaction state lives
type SessionConfig struct {
	Store         string        `yaml:"store"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

// WorkflowConfig controls the temp copy of downloaded audio
type WorkflowConfig struct {
	TempDir     string `yaml:"temp_dir"`
	CleanupTemp bool   `yaml:"cleanup_temp"`
}

// Config is the complete application configuration
type Config struct {
	Environment         string            `yaml:"environment"`
	TranslationProvider string            `yaml:"translation_provider"`
	OpenAI              OpenAIConfig      `yaml:"openai"`
	Gemini              GeminiConfig      `yaml:"gemini"`
	Storage             StorageConfig     `yaml:"storage"`
	Database            DatabaseConfig    `yaml:"database"`
	Session             SessionConfig     `yaml:"session"`
	Server              ServerConfig      `yaml:"server"`
	Hello               ServerConfig      `yaml:"hello"`
	Workflow            WorkflowConfig    `yaml:"workflow"`
	Languages           []language.Option `yaml:"languages"`
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Environment:         DefaultEnvironment,
		TranslationProvider: DefaultTranslationProvider,
		OpenAI:              OpenAIConfig{ChatModel: DefaultChatModel},
		Gemini:              GeminiConfig{Model: DefaultGeminiModel},
		Storage: StorageConfig{
			Endpoint: DefaultStorageEndpoint,
			Region:   DefaultStorageRegion,
			UseSSL:   true,
		},
		Database: DatabaseConfig{Driver: DefaultDBDriver, DSN: DefaultDBPath},
		Session: SessionConfig{
			Store:     DefaultSessionStore,
			RedisAddr: DefaultRedisAddr,
			TTL:       DefaultSessionTTL,
		},
		Server:    defaultServerConfig(DefaultHTTPPort),
		Hello:     defaultServerConfig(DefaultHelloPort),
		Workflow:  WorkflowConfig{TempDir: os.TempDir()},
		Languages: language.Defaults,
	}
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error; variables may be set system-wide.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// Load builds the configuration: defaults, then the YAML file at path (or
// ATX_CONFIG when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getEnvOrDefault("ATX_CONFIG", "")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	overrideString(&c.Environment, "APP_ENV")
	overrideString(&c.TranslationProvider, "TRANSLATION_PROVIDER")

	overrideString(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	overrideString(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	overrideString(&c.OpenAI.ChatModel, "OPENAI_CHAT_MODEL")
	overrideString(&c.Gemini.APIKey, "GEMINI_API_KEY")
	overrideString(&c.Gemini.Model, "GEMINI_MODEL")

	overrideString(&c.Storage.Endpoint, "S3_ENDPOINT")
	overrideString(&c.Storage.AccessKey, "S3_ACCESS_KEY")
	overrideString(&c.Storage.SecretKey, "S3_SECRET_KEY")
	overrideString(&c.Storage.Bucket, "S3_BUCKET")
	overrideString(&c.Storage.Region, "S3_REGION")
	overrideString(&c.Storage.Prefix, "S3_PREFIX")

	overrideString(&c.Database.Driver, "DB_DRIVER")
	overrideString(&c.Database.DSN, "DB_DSN")

	overrideString(&c.Session.Store, "SESSION_STORE")
	overrideString(&c.Session.RedisAddr, "REDIS_ADDR")
	overrideString(&c.Session.RedisPassword, "REDIS_PASSWORD")

	overrideString(&c.Server.Host, "HTTP_HOST")
	overrideString(&c.Server.Port, "HTTP_PORT")
	overrideString(&c.Hello.Port, "HELLO_PORT")

	overrideString(&c.Workflow.TempDir, "TEMP_DIR")

	for _, apply := range []func() error{
		func() error { return overrideBool(&c.Storage.UseSSL, "S3_USE_SSL") },
		func() error { return overrideInt(&c.Session.RedisDB, "REDIS_DB") },
		func() error { return overrideDuration(&c.Session.TTL, "SESSION_TTL") },
		func() error { return overrideDuration(&c.Server.WriteTimeout, "HTTP_WRITE_TIMEOUT") },
		func() error { return overrideBool(&c.Workflow.CleanupTemp, "CLEANUP_TEMP") },
	} {
		if err := apply(); err != nil {
			return err
		}
	}
	return nil
}
