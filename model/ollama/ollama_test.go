package ollama

import (
	"testing"

	"github.com/dulceai/dulceai/model"
)

// Interface compliance (compile-time assertion)
var _ model.Model = (*Model)(nil)

func TestDefaults(t *testing.T) {
	m := New()
	info := m.Info()
	if info.Provider != "ollama" {
		t.Fatalf("unexpected provider %q", info.Provider)
	}
	if info.Name != "gemma2:2b" {
		t.Fatalf("unexpected default model %q", info.Name)
	}
	if info.Endpoint != "http://localhost:11434" {
		t.Fatalf("unexpected default endpoint %q", info.Endpoint)
	}
}

func TestOptionsApplied(t *testing.T) {
	m := New(func(o *Options) {
		o.Model = "llama3"
		o.BaseURL = "http://ollama:11434/"
	})
	info := m.Info()
	if info.Name != "llama3" {
		t.Fatalf("unexpected model %q", info.Name)
	}
}
