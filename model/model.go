// Package model defines the language-model collaborator interface: an
// ordered list of role-tagged messages in, a single generated text out.
// Provider adapters live in subpackages; Mock supports tests.
package model

import (
	"context"
	"fmt"

	"github.com/dulceai/dulceai/core"
)

// Request is the normalized model input. Messages are ordered; system
// instructions travel as a leading system-role message and adapters
// map them to whatever their provider expects.
type Request struct {
	Messages []core.Message `json:"messages"`
}

// Info describes a model implementation for diagnostics.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Endpoint string `json:"endpoint,omitempty"`
}

// Model is the minimal interface the agent needs to drive generation.
// Generate blocks until the provider answers or fails; the agent
// tolerates any error by switching to its fallback path.
type Model interface {
	Generate(ctx context.Context, req Request) (string, error)
	Info() Info
}

// Mock is a lightweight in-memory Model for tests. Responses are keyed
// by the text of the last user message; unknown prompts get a generic
// echo. Setting Err makes every call fail, which exercises the agent's
// fallback path.
type Mock struct {
	info      Info
	responses map[string]string

	// Err, when non-nil, is returned by every Generate call.
	Err error

	// LastRequest captures the most recent request for assertions.
	LastRequest Request

	// Calls counts Generate invocations.
	Calls int
}

// NewMock constructs a Mock with the given display name.
func NewMock(name string) *Mock {
	return &Mock{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a canned completion for a user prompt.
func (m *Mock) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Generate implements Model.
func (m *Mock) Generate(_ context.Context, req Request) (string, error) {
	m.Calls++
	m.LastRequest = req
	if m.Err != nil {
		return "", m.Err
	}
	var last string
	for _, msg := range req.Messages {
		if msg.Role == core.RoleUser {
			last = msg.Text
		}
	}
	if resp, ok := m.responses[last]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", last), nil
}

// Info implements Model.
func (m *Mock) Info() Info { return m.info }
