package testutil

import (
	"github.com/dulceai/dulceai/memory"
)

// SummaryBuilder constructs memory.ContextSummary values with fluent
// chaining for tests.
// Example:
//
//	s := NewSummaryBuilder("user-1").Name("Ana").Messages(5).Build()
type SummaryBuilder struct {
	summary memory.ContextSummary
}

// NewSummaryBuilder creates a builder for a summary with the given user id.
// Use chainable methods (Name, Messages, Products, Orders) then call Build.
func NewSummaryBuilder(userID string) *SummaryBuilder {
	return &SummaryBuilder{summary: memory.ContextSummary{UserID: userID}}
}

// Name sets the captured display name (chainable).
func (b *SummaryBuilder) Name(name string) *SummaryBuilder {
	b.summary.Name = name
	return b
}

// Messages sets the conversation turn count (chainable).
func (b *SummaryBuilder) Messages(n int) *SummaryBuilder {
	b.summary.MessageCount = n
	return b
}

// Products appends recently consulted products (chainable).
func (b *SummaryBuilder) Products(products ...string) *SummaryBuilder {
	b.summary.RecentProducts = append(b.summary.RecentProducts, products...)
	return b
}

// Orders sets the historical order count (chainable).
func (b *SummaryBuilder) Orders(n int) *SummaryBuilder {
	b.summary.TotalOrders = n
	return b
}

// Build returns the assembled summary.
func (b *SummaryBuilder) Build() memory.ContextSummary {
	return b.summary
}

// SeedConversation creates a conversation pre-filled with alternating
// user/assistant turns, oldest first.
func SeedConversation(max int, turns ...string) *memory.Conversation {
	c := memory.NewConversation(max)
	for i, text := range turns {
		if i%2 == 0 {
			c.AddUserMessage(text)
		} else {
			c.AddAssistantMessage(text)
		}
	}
	return c
}
