package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, ":8000", cfg.Listen.Addr)
	assert.Equal(t, "ollama", cfg.Model.Provider)
	assert.Equal(t, "gemma2:2b", cfg.Model.Name)
	assert.Equal(t, "http://localhost:11434", cfg.Model.BaseURL)
	assert.Equal(t, 10, cfg.Memory.MaxMessages)
	assert.True(t, cfg.Memory.Enabled)
	assert.Equal(t, 8, cfg.Agent.HistoryWindow)
	assert.Equal(t, 1000, cfg.Agent.MaxUsers)
	assert.NotEmpty(t, cfg.Agent.SystemPrompt)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen:
  addr: ":9090"
model:
  provider: anthropic
  name: claude-3-5-sonnet-20241022
memory:
  max_messages: 20
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen.Addr)
	assert.Equal(t, "anthropic", cfg.Model.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model.Name)
	assert.Equal(t, 20, cfg.Memory.MaxMessages)
	// untouched keys keep defaults
	assert.Equal(t, 8, cfg.Agent.HistoryWindow)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen:\n  addr: \":9090\"\n"), 0o600))

	t.Setenv("DULCEAI_LISTEN_ADDR", ":7070")
	t.Setenv("DULCEAI_MODEL_NAME", "llama3")
	t.Setenv("DULCEAI_HISTORY_WINDOW", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Listen.Addr)
	assert.Equal(t, "llama3", cfg.Model.Name)
	assert.Equal(t, 4, cfg.Agent.HistoryWindow)
}

func TestLoad_RejectsNonPositiveBounds(t *testing.T) {
	t.Setenv("DULCEAI_MEMORY_MAX_MESSAGES", "-1")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [not a map"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}
