package profile

import (
	"os"
	"testing"
	"time"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RASA_AI_PROVIDER", "RASA_AI_BASE_URL", "RASA_AI_API_KEY",
		"RASA_AI_CHAT_MODEL", "RASA_AI_TRANSLATE_MODEL", "RASA_AI_VISION_MODEL",
		"RASA_AI_MAX_TOKENS", "RASA_AI_TIMEOUT", "RASA_STREAM_DELAY",
		"RASA_VISION_MAX_WORKERS", "RASA_SECRET",
	} {
		os.Unsetenv(key)
	}
}

func TestProfileDefaults(t *testing.T) {
	clearEnvVars(t)

	profile := &Profile{}
	profile.FromEnv()

	tests := []struct {
		name     string
		expected string
		actual   string
	}{
		{"AIProvider default", "ollama", profile.AIProvider},
		{"AIBaseURL default", "http://localhost:11434/v1", profile.AIBaseURL},
		{"AIChatModel default", "gpt2", profile.AIChatModel},
		{"AITranslateModel default", "opus-mt-en-hi", profile.AITranslateModel},
		{"AIVisionModel default", "blip-image-captioning-base", profile.AIVisionModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, tt.actual)
			}
		})
	}

	if profile.StreamDelay != 30*time.Millisecond {
		t.Errorf("StreamDelay default: expected 30ms, got %v", profile.StreamDelay)
	}
	if profile.AITimeout != 60*time.Second {
		t.Errorf("AITimeout default: expected 60s, got %v", profile.AITimeout)
	}
	if profile.AIMaxTokens != 150 {
		t.Errorf("AIMaxTokens default: expected 150, got %d", profile.AIMaxTokens)
	}
	if profile.VisionMaxWorkers != 3 {
		t.Errorf("VisionMaxWorkers default: expected 3, got %d", profile.VisionMaxWorkers)
	}
}

func TestProfileFromEnv(t *testing.T) {
	clearEnvVars(t)

	t.Setenv("RASA_AI_PROVIDER", "openai")
	t.Setenv("RASA_AI_BASE_URL", "https://api.openai.com/v1")
	t.Setenv("RASA_AI_CHAT_MODEL", "gpt-4o-mini")
	t.Setenv("RASA_STREAM_DELAY", "10ms")
	t.Setenv("RASA_AI_MAX_TOKENS", "256")

	profile := &Profile{}
	profile.FromEnv()

	if profile.AIProvider != "openai" {
		t.Errorf("AIProvider: expected openai, got %q", profile.AIProvider)
	}
	if profile.AIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("AIBaseURL: expected openai url, got %q", profile.AIBaseURL)
	}
	if profile.AIChatModel != "gpt-4o-mini" {
		t.Errorf("AIChatModel: expected gpt-4o-mini, got %q", profile.AIChatModel)
	}
	if profile.StreamDelay != 10*time.Millisecond {
		t.Errorf("StreamDelay: expected 10ms, got %v", profile.StreamDelay)
	}
	if profile.AIMaxTokens != 256 {
		t.Errorf("AIMaxTokens: expected 256, got %d", profile.AIMaxTokens)
	}
}

func TestProfileFromEnvInvalidValues(t *testing.T) {
	clearEnvVars(t)

	t.Setenv("RASA_STREAM_DELAY", "not-a-duration")
	t.Setenv("RASA_AI_MAX_TOKENS", "not-a-number")

	profile := &Profile{}
	profile.FromEnv()

	if profile.StreamDelay != 30*time.Millisecond {
		t.Errorf("StreamDelay: invalid value should fall back to 30ms, got %v", profile.StreamDelay)
	}
	if profile.AIMaxTokens != 150 {
		t.Errorf("AIMaxTokens: invalid value should fall back to 150, got %d", profile.AIMaxTokens)
	}
}

func TestProfileValidate(t *testing.T) {
	clearEnvVars(t)

	tests := []struct {
		name       string
		profile    Profile
		expectErr  bool
		wantMode   string
		wantDriver string
	}{
		{
			name:       "empty mode falls back to demo",
			profile:    Profile{Data: t.TempDir()},
			wantMode:   "demo",
			wantDriver: "sqlite",
		},
		{
			name:       "prod mode kept",
			profile:    Profile{Mode: "prod", Data: t.TempDir()},
			wantMode:   "prod",
			wantDriver: "sqlite",
		},
		{
			name:      "postgres requires DSN",
			profile:   Profile{Mode: "dev", Driver: "postgres", Data: t.TempDir()},
			expectErr: true,
		},
		{
			name:      "missing data dir",
			profile:   Profile{Mode: "dev", Data: "/nonexistent/rasa-data"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.expectErr {
				t.Fatalf("Validate() error = %v, expectErr %v", err, tt.expectErr)
			}
			if err != nil {
				return
			}
			if tt.profile.Mode != tt.wantMode {
				t.Errorf("Mode: expected %q, got %q", tt.wantMode, tt.profile.Mode)
			}
			if tt.profile.Driver != tt.wantDriver {
				t.Errorf("Driver: expected %q, got %q", tt.wantDriver, tt.profile.Driver)
			}
			if tt.profile.Driver == "sqlite" && tt.profile.DSN == "" {
				t.Error("DSN should be derived for sqlite")
			}
		})
	}
}
