// Package catalog holds the immutable product table and business
// information, together with the lexical lookup the agent's tools run
// against. Lookup is deliberately plain substring matching over fixed
// ordered data; the observable match priority is part of the contract.
package catalog

import (
	"strconv"
	"strings"
)

// Product describes one catalog entry with the expert fields surfaced
// to customers. Optional fields are empty strings when not applicable.
type Product struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Size          string   `json:"size,omitempty"`
	Ingredients   string   `json:"ingredients,omitempty"`
	Allergens     string   `json:"allergens,omitempty"`
	Storage       string   `json:"storage,omitempty"`
	Customization string   `json:"customization,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}

// Catalog is a read-only view over the product table. The zero value is
// unusable; construct with New.
type Catalog struct {
	products []Product
}

// New returns a catalog over the built-in product table.
func New() *Catalog {
	return &Catalog{products: products}
}

// NewFromProducts returns a catalog over an explicit product slice,
// used by tests that need a smaller table.
func NewFromProducts(ps []Product) *Catalog {
	return &Catalog{products: ps}
}

// Lookup finds the product matching the query. Matching passes run in
// fixed priority order, first hit wins:
//
//  1. exact or substring match against the product name
//  2. match against the key slug (underscores read as spaces)
//  3. match against the category
//  4. match against any declared keyword (either direction)
//
// The boolean result reports whether a product was found.
func (c *Catalog) Lookup(query string) (Product, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Product{}, false
	}

	for _, p := range c.products {
		name := strings.ToLower(p.Name)
		if q == name || strings.Contains(name, q) {
			return p, true
		}
	}
	for _, p := range c.products {
		if strings.Contains(strings.ReplaceAll(p.Key, "_", " "), q) {
			return p, true
		}
	}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Category), q) {
			return p, true
		}
	}
	for _, p := range c.products {
		for _, kw := range p.Keywords {
			kw = strings.ToLower(kw)
			if q == kw || strings.Contains(kw, q) || strings.Contains(q, kw) {
				return p, true
			}
		}
	}
	return Product{}, false
}

// All returns every product in declaration order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns products whose category contains the given term,
// case-insensitively.
func (c *Catalog) ByCategory(category string) []Product {
	cat := strings.ToLower(category)
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Category), cat) {
			out = append(out, p)
		}
	}
	return out
}

// Recommend returns up to three de-duplicated products matching the
// given preference tags, treated as category terms in order.
func (c *Catalog) Recommend(preferences []string) []Product {
	seen := make(map[string]bool)
	var out []Product
	for _, pref := range preferences {
		for _, p := range c.ByCategory(pref) {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			out = append(out, p)
			if len(out) == 3 {
				return out
			}
		}
	}
	return out
}

// FormatPrice renders an integer peso amount with thousands separators,
// e.g. 25000 -> "25,000".
func FormatPrice(price int) string {
	s := strconv.Itoa(price)
	var sign string
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
