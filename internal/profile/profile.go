package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where the wisdom knowledge base is stored
	DSN string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// Version is the current version of server
	Version string
	// Secret signs issued auth tokens
	Secret string

	// AI configuration
	AIProvider       string        // RASA_AI_PROVIDER (default: ollama)
	AIBaseURL        string        // RASA_AI_BASE_URL (default: http://localhost:11434/v1)
	AIAPIKey         string        // RASA_AI_API_KEY
	AIChatModel      string        // RASA_AI_CHAT_MODEL (default: gpt2)
	AITranslateModel string        // RASA_AI_TRANSLATE_MODEL (default: opus-mt-en-hi)
	AIVisionModel    string        // RASA_AI_VISION_MODEL (default: blip-image-captioning-base)
	AIMaxTokens      int           // RASA_AI_MAX_TOKENS (default: 150)
	AITimeout        time.Duration // RASA_AI_TIMEOUT (default: 60s)
	StreamDelay      time.Duration // RASA_STREAM_DELAY (default: 30ms)
	VisionMaxWorkers int64         // RASA_VISION_MAX_WORKERS (default: 3)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// Address returns the host:port the server binds to.
func (p *Profile) Address() string {
	return fmt.Sprintf("%s:%d", p.Addr, p.Port)
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("invalid duration in environment, using default", slog.String("key", key), slog.String("value", value))
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err == nil {
			return n
		}
		slog.Warn("invalid integer in environment, using default", slog.String("key", key), slog.String("value", value))
	}
	return defaultValue
}

// FromEnv loads AI configuration from RASA_* environment variables.
func (p *Profile) FromEnv() {
	p.AIProvider = getEnvOrDefault("RASA_AI_PROVIDER", "ollama")
	p.AIBaseURL = getEnvOrDefault("RASA_AI_BASE_URL", "http://localhost:11434/v1")
	p.AIAPIKey = os.Getenv("RASA_AI_API_KEY")
	p.AIChatModel = getEnvOrDefault("RASA_AI_CHAT_MODEL", "gpt2")
	p.AITranslateModel = getEnvOrDefault("RASA_AI_TRANSLATE_MODEL", "opus-mt-en-hi")
	p.AIVisionModel = getEnvOrDefault("RASA_AI_VISION_MODEL", "blip-image-captioning-base")
	p.AIMaxTokens = getIntEnv("RASA_AI_MAX_TOKENS", 150)
	p.AITimeout = getDurationEnv("RASA_AI_TIMEOUT", 60*time.Second)
	p.StreamDelay = getDurationEnv("RASA_STREAM_DELAY", 30*time.Millisecond)
	p.VisionMaxWorkers = int64(getIntEnv("RASA_VISION_MAX_WORKERS", 3))
	if p.Secret == "" {
		p.Secret = os.Getenv("RASA_SECRET")
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Driver != "sqlite" && p.Driver != "postgres" {
		p.Driver = "sqlite"
	}

	if p.Data == "" {
		p.Data = "."
	}
	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
		return err
	}
	p.Data = dataDir

	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("rasa_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}
	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("postgres driver requires a DSN")
	}

	if p.Secret == "" {
		p.Secret = "rasa"
	}

	return nil
}
