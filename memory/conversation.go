package memory

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dulceai/dulceai/core"
)

// DefaultMaxMessages bounds a conversation buffer when no explicit cap
// is configured.
const DefaultMaxMessages = 10

// topicKeywords is the fixed vocabulary scanned by Summary to derive
// conversation topics. Order determines the order topics are reported in.
var topicKeywords = []string{
	"pedido", "producto", "precio", "horario", "contacto",
	"cupcake", "torta", "pastel",
}

// Conversation is a bounded rolling buffer of one user's message history.
// Appending beyond the cap evicts the oldest turns first.
type Conversation struct {
	messages []core.Message
	max      int
}

// NewConversation creates an empty buffer holding at most max turns.
// A non-positive max falls back to DefaultMaxMessages.
func NewConversation(max int) *Conversation {
	if max <= 0 {
		max = DefaultMaxMessages
	}
	return &Conversation{max: max}
}

// AddUserMessage appends a timestamped user turn and trims to the cap.
func (c *Conversation) AddUserMessage(text string) {
	c.append(core.NewUserMessage(text))
}

// AddAssistantMessage appends a timestamped assistant turn and trims to the cap.
func (c *Conversation) AddAssistantMessage(text string) {
	c.append(core.NewAssistantMessage(text))
}

func (c *Conversation) append(msg core.Message) {
	c.messages = append(c.messages, msg)
	if len(c.messages) > c.max {
		c.messages = c.messages[len(c.messages)-c.max:]
	}
}

// History returns the most recent limit turns in chronological order
// (oldest first). A non-positive limit returns all stored turns. The
// returned slice is a copy.
func (c *Conversation) History(limit int) []core.Message {
	msgs := c.messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]core.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Len returns the number of stored turns.
func (c *Conversation) Len() int { return len(c.messages) }

// Clear empties the buffer.
func (c *Conversation) Clear() { c.messages = nil }

// Summary captures buffer statistics and the topic set mentioned so far.
type Summary struct {
	TotalMessages int        `json:"total_messages"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	LastMessage   *time.Time `json:"last_message,omitempty"`
	Topics        []string   `json:"topics"`
}

// Summarize reports turn count, first/last timestamps and the set of
// topic keywords mentioned anywhere in the buffer. Each keyword appears
// at most once regardless of repeat mentions.
func (c *Conversation) Summarize() Summary {
	s := Summary{TotalMessages: len(c.messages), Topics: c.topics()}
	if len(c.messages) > 0 {
		first := c.messages[0].Timestamp
		last := c.messages[len(c.messages)-1].Timestamp
		s.StartTime = &first
		s.LastMessage = &last
	}
	return s
}

func (c *Conversation) topics() []string {
	topics := make([]string, 0, len(topicKeywords))
	seen := make(map[string]bool, len(topicKeywords))
	for _, msg := range c.messages {
		text := strings.ToLower(msg.Text)
		for _, kw := range topicKeywords {
			if !seen[kw] && strings.Contains(text, kw) {
				seen[kw] = true
				topics = append(topics, kw)
			}
		}
	}
	return topics
}

// export is the stable JSON shape produced by Export.
type export struct {
	Messages []core.Message `json:"messages"`
	Summary  Summary        `json:"summary"`
}

// Export serializes the buffer and its summary as JSON.
func (c *Conversation) Export() ([]byte, error) {
	return json.MarshalIndent(export{Messages: c.History(0), Summary: c.Summarize()}, "", "  ")
}

// Import replaces the buffer with messages from a previous Export,
// trimming to the cap if the snapshot holds more turns than allowed.
func (c *Conversation) Import(data []byte) error {
	var e export
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	c.messages = e.Messages
	if len(c.messages) > c.max {
		c.messages = c.messages[len(c.messages)-c.max:]
	}
	return nil
}
