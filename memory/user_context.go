package memory

import (
	"fmt"
	"strings"
	"time"
)

// maxRecentProducts caps the most-recent-first product list.
const maxRecentProducts = 5

// Order is one entry in a user's order history. Details carries the
// arbitrary fields supplied by the caller; PlacedAt and UserID are
// stamped on insertion.
type Order struct {
	Details  map[string]any `json:"details"`
	PlacedAt time.Time      `json:"placed_at"`
	UserID   string         `json:"user_id"`
}

// UserContext accumulates semantic facts about one user, distinct from
// the raw message history: display name, preference tags, recently
// consulted products, order history and visit timestamps.
type UserContext struct {
	userID         string
	name           string
	preferences    []string
	recentProducts []string
	orders         []Order
	lastVisit      time.Time
	registeredAt   time.Time
}

// NewUserContext creates a context for the given user id with the
// registration timestamp set to now.
func NewUserContext(userID string) *UserContext {
	return &UserContext{userID: userID, registeredAt: time.Now()}
}

// UserID returns the immutable user identifier.
func (u *UserContext) UserID() string { return u.userID }

// Name returns the display name, or "" when none has been captured.
func (u *UserContext) Name() string { return u.name }

// SetName records the user's display name.
func (u *UserContext) SetName(name string) { u.name = name }

// AddPreference records a preference tag. Duplicates are ignored;
// insertion order is preserved.
func (u *UserContext) AddPreference(pref string) {
	for _, p := range u.preferences {
		if p == pref {
			return
		}
	}
	u.preferences = append(u.preferences, pref)
}

// AddRecentProduct inserts a product at the front of the recent list.
// A product already present is left where it is, so repeated mentions
// are a no-op. The list is trimmed to the five most recent entries.
func (u *UserContext) AddRecentProduct(product string) {
	for _, p := range u.recentProducts {
		if p == product {
			return
		}
	}
	u.recentProducts = append([]string{product}, u.recentProducts...)
	if len(u.recentProducts) > maxRecentProducts {
		u.recentProducts = u.recentProducts[:maxRecentProducts]
	}
}

// AddOrder appends an order record stamped with the current time and
// this context's user id.
func (u *UserContext) AddOrder(details map[string]any) {
	u.orders = append(u.orders, Order{Details: details, PlacedAt: time.Now(), UserID: u.userID})
}

// TouchLastVisit updates the last-visit timestamp to now.
func (u *UserContext) TouchLastVisit() { u.lastVisit = time.Now() }

// ContextSummary is a read-only snapshot of a UserContext, consumed by
// the planner and decision policies.
type ContextSummary struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name,omitempty"`
	Preferences    []string  `json:"preferences"`
	RecentProducts []string  `json:"recent_products"`
	TotalOrders    int       `json:"total_orders"`
	LastVisit      time.Time `json:"last_visit"`
	RegisteredAt   time.Time `json:"registered_at"`

	// MessageCount is filled in by the agent from the conversation
	// buffer; the context itself does not track turns.
	MessageCount int `json:"message_count"`
}

// Summary returns a snapshot of all accumulated attributes.
func (u *UserContext) Summary() ContextSummary {
	return ContextSummary{
		UserID:         u.userID,
		Name:           u.name,
		Preferences:    append([]string(nil), u.preferences...),
		RecentProducts: append([]string(nil), u.recentProducts...),
		TotalOrders:    len(u.orders),
		LastVisit:      u.lastVisit,
		RegisteredAt:   u.registeredAt,
	}
}

// PromptFragment builds the natural-language personalization fragment
// injected verbatim into the system prompt. Sentences appear in fixed
// order (name, preferences, recent products, order count) joined by
// single spaces; the result is empty when nothing is populated.
func (u *UserContext) PromptFragment() string {
	var parts []string
	if u.name != "" {
		parts = append(parts, fmt.Sprintf("El cliente se llama %s.", u.name))
	}
	if len(u.preferences) > 0 {
		parts = append(parts, fmt.Sprintf("Le interesa: %s.", strings.Join(u.preferences, ", ")))
	}
	if len(u.recentProducts) > 0 {
		parts = append(parts, fmt.Sprintf("Recientemente consultó: %s.", strings.Join(u.recentProducts, ", ")))
	}
	if len(u.orders) > 0 {
		parts = append(parts, fmt.Sprintf("Tiene %d pedidos anteriores.", len(u.orders)))
	}
	return strings.Join(parts, " ")
}
