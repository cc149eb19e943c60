package ai

import (
	"testing"
	"time"

	"github.com/rasalabs/rasa/internal/profile"
)

func TestNewConfigFromProfile(t *testing.T) {
	p := &profile.Profile{
		AIProvider:       "ollama",
		AIBaseURL:        "http://localhost:11434/v1",
		AIChatModel:      "gpt2",
		AITranslateModel: "opus-mt-en-hi",
		AIVisionModel:    "blip-image-captioning-base",
		AIMaxTokens:      150,
		AITimeout:        30 * time.Second,
		StreamDelay:      30 * time.Millisecond,
		VisionMaxWorkers: 3,
	}

	cfg := NewConfigFromProfile(p)

	if cfg.Chat.Model != "gpt2" {
		t.Errorf("Chat.Model = %q, want gpt2", cfg.Chat.Model)
	}
	if cfg.Chat.StreamDelay != 30*time.Millisecond {
		t.Errorf("Chat.StreamDelay = %v, want 30ms", cfg.Chat.StreamDelay)
	}
	if cfg.Translation.Model != "opus-mt-en-hi" {
		t.Errorf("Translation.Model = %q, want opus-mt-en-hi", cfg.Translation.Model)
	}
	if cfg.Vision.MaxImageDim != 1024 {
		t.Errorf("Vision.MaxImageDim = %d, want 1024", cfg.Vision.MaxImageDim)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:   "valid ollama config",
			mutate: func(c *Config) {},
		},
		{
			name:        "openai without API key",
			mutate:      func(c *Config) { c.Chat.Provider = "openai"; c.Chat.APIKey = "" },
			expectError: true,
		},
		{
			name:   "openai with API key",
			mutate: func(c *Config) { c.Chat.Provider = "openai"; c.Chat.APIKey = "sk-test" },
		},
		{
			name:        "unsupported provider",
			mutate:      func(c *Config) { c.Chat.Provider = "transformers" },
			expectError: true,
		},
		{
			name:        "missing chat model",
			mutate:      func(c *Config) { c.Chat.Model = "" },
			expectError: true,
		},
		{
			name:        "negative stream delay",
			mutate:      func(c *Config) { c.Chat.StreamDelay = -time.Millisecond },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Chat: ChatConfig{
					Provider:    "ollama",
					BaseURL:     "http://localhost:11434/v1",
					Model:       "gpt2",
					StreamDelay: 30 * time.Millisecond,
				},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.expectError {
				t.Errorf("Validate() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}
