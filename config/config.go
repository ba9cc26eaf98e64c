// Package config handles DulceAI configuration loading: an optional
// YAML file with environment variable overrides, and safe defaults that
// match a local Ollama install.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	Listen  ListenConfig  `yaml:"listen"`
	Model   ModelConfig   `yaml:"model"`
	Memory  MemoryConfig  `yaml:"memory"`
	Agent   AgentConfig   `yaml:"agent"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ListenConfig configures the HTTP surface.
type ListenConfig struct {
	Addr string `yaml:"addr"`
}

// ModelConfig selects and tunes the language-model collaborator.
type ModelConfig struct {
	// Provider is "ollama" or "anthropic".
	Provider    string  `yaml:"provider"`
	Name        string  `yaml:"name"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
	APIKey      string  `yaml:"api_key"`
}

// MemoryConfig bounds the per-user conversation buffer.
type MemoryConfig struct {
	MaxMessages int  `yaml:"max_messages"`
	Enabled     bool `yaml:"enabled"`
}

// AgentConfig tunes the orchestrator. HistoryWindow is the per-request
// turn cap sent to the model; it is intentionally independent from
// Memory.MaxMessages, which bounds what is stored.
type AgentConfig struct {
	HistoryWindow int    `yaml:"history_window"`
	MaxUsers      int    `yaml:"max_users"`
	SystemPrompt  string `yaml:"system_prompt"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// MetricsConfig configures the Prometheus namespace.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// Defaults returns the baseline configuration for a local deployment.
func Defaults() Config {
	return Config{
		Listen: ListenConfig{Addr: ":8000"},
		Model: ModelConfig{
			Provider:    "ollama",
			Name:        "gemma2:2b",
			BaseURL:     "http://localhost:11434",
			Temperature: 0.7,
			MaxTokens:   2000,
		},
		Memory:  MemoryConfig{MaxMessages: 10, Enabled: true},
		Agent:   AgentConfig{HistoryWindow: 8, MaxUsers: 1000, SystemPrompt: SystemPrompt},
		Log:     LogConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Namespace: "dulceai"},
	}
}

// Load reads the optional YAML file at path (skipped when path is
// empty) on top of the defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Memory.MaxMessages <= 0 {
		return Config{}, fmt.Errorf("memory.max_messages must be positive, got %d", cfg.Memory.MaxMessages)
	}
	if cfg.Agent.HistoryWindow <= 0 {
		return Config{}, fmt.Errorf("agent.history_window must be positive, got %d", cfg.Agent.HistoryWindow)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Listen.Addr, "DULCEAI_LISTEN_ADDR")
	setString(&cfg.Model.Provider, "DULCEAI_MODEL_PROVIDER")
	setString(&cfg.Model.Name, "DULCEAI_MODEL_NAME")
	setString(&cfg.Model.BaseURL, "DULCEAI_MODEL_BASE_URL")
	setString(&cfg.Model.APIKey, "DULCEAI_MODEL_API_KEY")
	setFloat(&cfg.Model.Temperature, "DULCEAI_MODEL_TEMPERATURE")
	setInt64(&cfg.Model.MaxTokens, "DULCEAI_MODEL_MAX_TOKENS")
	setInt(&cfg.Memory.MaxMessages, "DULCEAI_MEMORY_MAX_MESSAGES")
	setInt(&cfg.Agent.HistoryWindow, "DULCEAI_HISTORY_WINDOW")
	setInt(&cfg.Agent.MaxUsers, "DULCEAI_MAX_USERS")
	setString(&cfg.Log.Level, "DULCEAI_LOG_LEVEL")
	setString(&cfg.Log.Format, "DULCEAI_LOG_FORMAT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
