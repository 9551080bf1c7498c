package config

import "time"

// Default configuration constants
const (
	DefaultEnvironment = "development"

	// Network defaults
	DefaultHost      = "0.0.0.0"
	DefaultHTTPPort  = "8080"
	DefaultHelloPort = "5000"

	// Timeout defaults. Writes cover a full transcription round trip.
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 10 * time.Minute
	DefaultIdleTimeout  = 120 * time.Second

	// Storage defaults
	DefaultStorageEndpoint = "s3.amazonaws.com"
	DefaultStorageRegion   = "us-east-1"

	// Database defaults
	DefaultDBDriver = "sqlite3"
	DefaultDBPath   = "data/accounts.db"

	// Session defaults
	DefaultSessionStore = "memory"
	DefaultSessionTTL   = 2 * time.Hour
	DefaultRedisAddr    = "localhost:6379"

	// Translation defaults
	DefaultTranslationProvider = "openai"
	DefaultChatModel           = "gpt-4o-mini"
	DefaultGeminiModel         = "gemini-2.0-flash"
)
