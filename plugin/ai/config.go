package ai

import (
	"fmt"
	"time"

	"github.com/rasalabs/rasa/internal/profile"
)

// Config represents AI configuration for all capabilities.
type Config struct {
	Chat        ChatConfig
	Translation TranslationConfig
	Vision      VisionConfig
}

// ChatConfig represents text generation configuration.
type ChatConfig struct {
	Provider    string // ollama, openai
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int     // default: 150
	Temperature float32 // default: 0.7
	Timeout     time.Duration
	StreamDelay time.Duration // pacing between streamed chunks
}

// TranslationConfig represents translation model configuration.
type TranslationConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// VisionConfig represents image captioning configuration.
type VisionConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxImageDim int   // uploads larger than this are downscaled
	MaxWorkers  int64 // concurrent captioning bound
}

// NewConfigFromProfile creates AI config from profile.
func NewConfigFromProfile(p *profile.Profile) *Config {
	cfg := &Config{
		Chat: ChatConfig{
			Provider:    p.AIProvider,
			BaseURL:     p.AIBaseURL,
			APIKey:      p.AIAPIKey,
			Model:       p.AIChatModel,
			MaxTokens:   p.AIMaxTokens,
			Temperature: 0.7,
			Timeout:     p.AITimeout,
			StreamDelay: p.StreamDelay,
		},
		Translation: TranslationConfig{
			BaseURL: p.AIBaseURL,
			APIKey:  p.AIAPIKey,
			Model:   p.AITranslateModel,
			Timeout: p.AITimeout,
		},
		Vision: VisionConfig{
			BaseURL:     p.AIBaseURL,
			APIKey:      p.AIAPIKey,
			Model:       p.AIVisionModel,
			Timeout:     p.AITimeout,
			MaxImageDim: 1024,
			MaxWorkers:  p.VisionMaxWorkers,
		},
	}
	return cfg
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	switch c.Chat.Provider {
	case "ollama":
		if c.Chat.BaseURL == "" {
			return fmt.Errorf("ollama provider requires a base URL")
		}
	case "openai":
		if c.Chat.APIKey == "" {
			return fmt.Errorf("openai provider requires an API key")
		}
	default:
		return fmt.Errorf("unsupported AI provider: %s", c.Chat.Provider)
	}

	if c.Chat.Model == "" {
		return fmt.Errorf("chat model is required")
	}
	if c.Chat.StreamDelay < 0 {
		return fmt.Errorf("stream delay must not be negative")
	}
	return nil
}
