package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulceai/dulceai/internal/testutil"
	"github.com/dulceai/dulceai/memory"
)

func TestPlan_Categories(t *testing.T) {
	anon := testutil.NewSummaryBuilder("u1").Build()

	tests := []struct {
		name    string
		message string
		actions []string
	}{
		{"greeting without name asks for it", "Hola", []string{"greet", "ask_name"}},
		{"product", "¿Tienen cupcakes?", []string{"search_product", "recommend"}},
		{"price", "¿cuánto vale la caja?", []string{"provide_price", "offer_alternatives"}},
		{"order", "quiero comprar algo", []string{"process_order", "confirm_contact"}},
		{"hours", "¿a qué hora están abierto?", []string{"provide_hours"}},
		{"contact", "pásame su dirección", []string{"provide_contact"}},
		{"fallback", "xyzzy", []string{"general_response"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Plan(tt.message, anon)
			actions := make([]string, len(steps))
			for i, s := range steps {
				actions[i] = s.Action
			}
			assert.Equal(t, tt.actions, actions)
		})
	}
}

func TestPlan_GreetingWithKnownNameSkipsAskName(t *testing.T) {
	ctx := testutil.NewSummaryBuilder("u1").Name("Ana").Build()
	steps := Plan("Hola", ctx)
	for _, s := range steps {
		assert.NotEqual(t, "ask_name", s.Action)
	}
}

func TestPlan_PersonalizeInsertedSecond(t *testing.T) {
	ctx := testutil.NewSummaryBuilder("u1").Name("Ana").Build()

	steps := Plan("¿Tienen cupcakes?", ctx)
	assert.Len(t, steps, 3)
	assert.Equal(t, "search_product", steps[0].Action)
	assert.Equal(t, "personalize", steps[1].Action)
	assert.Equal(t, 0, steps[1].Priority)
	assert.Equal(t, "Personalizar respuesta para Ana", steps[1].Description)
	assert.Equal(t, "recommend", steps[2].Action)

	// single-step plans get personalize appended instead
	steps = Plan("¿a qué hora están abierto?", ctx)
	assert.Len(t, steps, 2)
	assert.Equal(t, "provide_hours", steps[0].Action)
	assert.Equal(t, "personalize", steps[1].Action)
}

func TestPlan_FirstCategoryWins(t *testing.T) {
	// both greeting and product keywords present; greeting is declared first
	steps := Plan("hola, ¿tienen tortas?", memory.ContextSummary{})
	assert.Equal(t, "greet", steps[0].Action)
}
