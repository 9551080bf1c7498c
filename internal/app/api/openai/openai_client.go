package openai

import (
	"github.com/sashabaranov/go-openai"
)

// ClientConfig configures the OpenAI client. BaseURL is only set to point at
// a compatible gateway or a test server.
type ClientConfig struct {
	APIKey  string
	BaseURL string
}

// NewClient creates an OpenAI client
func NewClient(cfg ClientConfig) *openai.Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(config)
}
