// Package ollama adapts a local Ollama server to the model.Model
// interface. Ollama exposes an OpenAI-compatible chat completions
// endpoint under /v1, so the adapter drives it through the official
// OpenAI Go client pointed at the local base URL.
package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/dulceai/dulceai/core"
	"github.com/dulceai/dulceai/model"
)

// Options configure the Ollama adapter. Defaults match a stock local
// install running the gemma2:2b model.
type Options struct {
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int64
}

// Model wraps the Ollama OpenAI-compatible API behind model.Model.
type Model struct {
	client openai.Client
	opts   Options
}

// New creates an Ollama-backed model.
func New(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:       "gemma2:2b",
		BaseURL:     "http://localhost:11434",
		Temperature: 0.7,
		MaxTokens:   2000,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client := openai.NewClient(
		option.WithBaseURL(strings.TrimSuffix(opts.BaseURL, "/")+"/v1/"),
		// Ollama ignores the key but the client requires one.
		option.WithAPIKey("ollama"),
	)
	return &Model{client: client, opts: opts}
}

// Generate implements model.Model with a non-streaming completion.
func (m *Model) Generate(ctx context.Context, req model.Request) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case core.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Text))
		case core.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Text))
		default:
			messages = append(messages, openai.UserMessage(msg.Text))
		}
	}

	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               m.opts.Model,
		Temperature:         openai.Float(m.opts.Temperature),
		MaxCompletionTokens: openai.Int(m.opts.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("ollama api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("ollama returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "ollama", Endpoint: m.opts.BaseURL}
}
