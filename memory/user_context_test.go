package memory

import (
	"strings"
	"testing"
)

func TestUserContext_RecentProducts(t *testing.T) {
	u := NewUserContext("u1")
	u.AddRecentProduct("torta")
	u.AddRecentProduct("cupcake")
	u.AddRecentProduct("torta") // repeat mention is a no-op

	got := u.Summary().RecentProducts
	if len(got) != 2 || got[0] != "cupcake" || got[1] != "torta" {
		t.Fatalf("expected [cupcake torta], got %v", got)
	}

	for _, p := range []string{"pastel", "galleta", "dona", "pie"} {
		u.AddRecentProduct(p)
	}
	got = u.Summary().RecentProducts
	if len(got) != maxRecentProducts {
		t.Fatalf("expected list capped at %d, got %d", maxRecentProducts, len(got))
	}
	if got[0] != "pie" {
		t.Fatalf("expected most recent first, got %v", got)
	}
}

func TestUserContext_PreferencesDeduped(t *testing.T) {
	u := NewUserContext("u1")
	u.AddPreference("chocolate")
	u.AddPreference("vainilla")
	u.AddPreference("chocolate")
	got := u.Summary().Preferences
	if len(got) != 2 || got[0] != "chocolate" || got[1] != "vainilla" {
		t.Fatalf("expected deduped ordered preferences, got %v", got)
	}
}

func TestUserContext_Orders(t *testing.T) {
	u := NewUserContext("u1")
	u.AddOrder(map[string]any{"message": "quiero una torta"})
	s := u.Summary()
	if s.TotalOrders != 1 {
		t.Fatalf("expected 1 order, got %d", s.TotalOrders)
	}
}

func TestUserContext_PromptFragment(t *testing.T) {
	u := NewUserContext("u1")
	if u.PromptFragment() != "" {
		t.Fatalf("expected empty fragment for fresh context, got %q", u.PromptFragment())
	}

	u.SetName("Ana")
	u.AddPreference("chocolate")
	u.AddRecentProduct("cupcake")
	u.AddRecentProduct("torta")
	u.AddOrder(map[string]any{"message": "pedido"})

	frag := u.PromptFragment()
	want := []string{
		"El cliente se llama Ana.",
		"Le interesa: chocolate.",
		"Recientemente consultó: torta, cupcake.",
		"Tiene 1 pedidos anteriores.",
	}
	if frag != strings.Join(want, " ") {
		t.Fatalf("unexpected fragment:\n got %q\nwant %q", frag, strings.Join(want, " "))
	}
}

func TestUserContext_SummaryIsSnapshot(t *testing.T) {
	u := NewUserContext("u1")
	u.AddPreference("chocolate")
	s := u.Summary()
	s.Preferences[0] = "changed"
	if u.Summary().Preferences[0] != "chocolate" {
		t.Fatalf("expected snapshot isolation")
	}
}
