package planning

import (
	"fmt"
	"strings"

	"github.com/dulceai/dulceai/memory"
)

// Step is one advisory planning artifact. Lower priority sorts earlier;
// 0 is personalization, 1 the primary action, 2 a secondary action.
// Steps are logged by the orchestrator and never dispatched.
type Step struct {
	Action      string `json:"action"`
	Priority    int    `json:"priority"`
	Description string `json:"description"`
}

// category groups the trigger keywords for one message class. The
// declaration order of categories is the classification priority.
type category struct {
	keywords []string
	steps    func(ctx memory.ContextSummary) []Step
}

var categories = []category{
	{
		keywords: []string{"hola", "hi", "buenos"},
		steps: func(ctx memory.ContextSummary) []Step {
			steps := []Step{{Action: "greet", Priority: 1, Description: "Saludar al usuario de manera amigable"}}
			if ctx.Name == "" {
				steps = append(steps, Step{Action: "ask_name", Priority: 2, Description: "Preguntar nombre del usuario"})
			}
			return steps
		},
	},
	{
		keywords: []string{"producto", "cupcake", "torta", "pastel", "galleta"},
		steps: func(memory.ContextSummary) []Step {
			return []Step{
				{Action: "search_product", Priority: 1, Description: "Buscar información del producto"},
				{Action: "recommend", Priority: 2, Description: "Ofrecer recomendaciones relacionadas"},
			}
		},
	},
	{
		keywords: []string{"precio", "cuesta", "valor", "cuánto"},
		steps: func(memory.ContextSummary) []Step {
			return []Step{
				{Action: "provide_price", Priority: 1, Description: "Proporcionar información de precios"},
				{Action: "offer_alternatives", Priority: 2, Description: "Ofrecer alternativas si es necesario"},
			}
		},
	},
	{
		keywords: []string{"pedido", "orden", "comprar", "quiero"},
		steps: func(memory.ContextSummary) []Step {
			return []Step{
				{Action: "process_order", Priority: 1, Description: "Procesar pedido del cliente"},
				{Action: "confirm_contact", Priority: 2, Description: "Confirmar información de contacto"},
			}
		},
	},
	{
		keywords: []string{"horario", "abierto", "tiempo"},
		steps: func(memory.ContextSummary) []Step {
			return []Step{{Action: "provide_hours", Priority: 1, Description: "Proporcionar horarios de atención"}}
		},
	},
	{
		keywords: []string{"contacto", "teléfono", "dirección"},
		steps: func(memory.ContextSummary) []Step {
			return []Step{{Action: "provide_contact", Priority: 1, Description: "Proporcionar información de contacto"}}
		},
	},
}

// Plan classifies the message into exactly one category (first matching
// keyword group wins, falling back to a general response) and returns
// that category's step template. When the context carries a stored
// name, a personalize step (priority 0) is inserted as the second
// element, leaving the primary category step first.
func Plan(message string, ctx memory.ContextSummary) []Step {
	lower := strings.ToLower(message)

	var steps []Step
	for _, cat := range categories {
		if containsAny(lower, cat.keywords...) {
			steps = cat.steps(ctx)
			break
		}
	}
	if steps == nil {
		steps = []Step{{Action: "general_response", Priority: 1, Description: "Proporcionar respuesta general o aclaración"}}
	}

	if ctx.Name != "" {
		personalize := Step{
			Action:      "personalize",
			Priority:    0,
			Description: fmt.Sprintf("Personalizar respuesta para %s", ctx.Name),
		}
		if len(steps) < 2 {
			steps = append(steps, personalize)
		} else {
			steps = append(steps[:1], append([]Step{personalize}, steps[1:]...)...)
		}
	}

	return steps
}
