package memory

import (
	"testing"

	"github.com/dulceai/dulceai/core"
)

func TestConversation_AppendAndTrim(t *testing.T) {
	c := NewConversation(4)
	for i := 0; i < 3; i++ {
		c.AddUserMessage("pregunta")
		c.AddAssistantMessage("respuesta")
	}
	if c.Len() != 4 {
		t.Fatalf("expected buffer trimmed to 4, got %d", c.Len())
	}
	// oldest turns evicted first
	h := c.History(0)
	if h[0].Role != core.RoleUser || h[len(h)-1].Role != core.RoleAssistant {
		t.Fatalf("unexpected roles after trim: %#v", h)
	}
}

func TestConversation_HistoryWindow(t *testing.T) {
	c := NewConversation(10)
	c.AddUserMessage("uno")
	c.AddAssistantMessage("dos")
	c.AddUserMessage("tres")

	h := c.History(2)
	if len(h) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(h))
	}
	if h[0].Text != "dos" || h[1].Text != "tres" {
		t.Fatalf("expected most recent turns in order, got %#v", h)
	}

	// non-positive limit returns everything
	if got := len(c.History(0)); got != 3 {
		t.Fatalf("expected full history, got %d", got)
	}
	if got := len(c.History(-1)); got != 3 {
		t.Fatalf("expected full history for negative limit, got %d", got)
	}
}

func TestConversation_HistoryIsCopy(t *testing.T) {
	c := NewConversation(10)
	c.AddUserMessage("original")
	h := c.History(0)
	h[0].Text = "changed"
	if c.History(0)[0].Text != "original" {
		t.Fatalf("expected copy isolation")
	}
}

func TestConversation_DefaultCap(t *testing.T) {
	c := NewConversation(0)
	for i := 0; i < 15; i++ {
		c.AddUserMessage("x")
	}
	if c.Len() != DefaultMaxMessages {
		t.Fatalf("expected default cap %d, got %d", DefaultMaxMessages, c.Len())
	}
}

func TestConversation_SummarizeTopics(t *testing.T) {
	c := NewConversation(10)
	c.AddUserMessage("Quiero hacer un pedido de una torta")
	c.AddAssistantMessage("Claro, ¿qué torta te interesa?")
	c.AddUserMessage("¿Qué precio tiene?")

	s := c.Summarize()
	if s.TotalMessages != 3 {
		t.Fatalf("expected 3 messages, got %d", s.TotalMessages)
	}
	if s.StartTime == nil || s.LastMessage == nil {
		t.Fatalf("expected timestamps to be set")
	}
	want := []string{"pedido", "torta", "precio"}
	if len(s.Topics) != len(want) {
		t.Fatalf("expected topics %v, got %v", want, s.Topics)
	}
	for i, topic := range want {
		if s.Topics[i] != topic {
			t.Fatalf("expected topics %v, got %v", want, s.Topics)
		}
	}
}

func TestConversation_SummarizeEmpty(t *testing.T) {
	s := NewConversation(10).Summarize()
	if s.TotalMessages != 0 || s.StartTime != nil || s.LastMessage != nil {
		t.Fatalf("unexpected summary for empty buffer: %#v", s)
	}
	if len(s.Topics) != 0 {
		t.Fatalf("expected no topics, got %v", s.Topics)
	}
}

func TestConversation_ExportImport(t *testing.T) {
	c := NewConversation(10)
	c.AddUserMessage("hola")
	c.AddAssistantMessage("¡Hola! ¿En qué puedo ayudarte?")

	data, err := c.Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	restored := NewConversation(10)
	if err := restored.Import(data); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("expected 2 restored turns, got %d", restored.Len())
	}
	if restored.History(0)[0].Text != "hola" {
		t.Fatalf("unexpected restored history: %#v", restored.History(0))
	}
}

func TestConversation_ImportTrimsToCap(t *testing.T) {
	big := NewConversation(10)
	for i := 0; i < 6; i++ {
		big.AddUserMessage("mensaje")
	}
	data, _ := big.Export()

	small := NewConversation(3)
	if err := small.Import(data); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if small.Len() != 3 {
		t.Fatalf("expected import trimmed to 3, got %d", small.Len())
	}
}

func TestConversation_Clear(t *testing.T) {
	c := NewConversation(10)
	c.AddUserMessage("hola")
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty buffer after clear, got %d", c.Len())
	}
}
