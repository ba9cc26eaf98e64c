package planning

import (
	"strings"
	"unicode"

	"github.com/dulceai/dulceai/memory"
)

// Style directs the tone of the generated reply. It is appended to the
// system prompt, not a separate generation path.
type Style string

// Response styles, chosen by DecideResponseStyle.
const (
	StyleDetailed     Style = "detailed"
	StyleBrief        Style = "brief"
	StylePersonalized Style = "personalized"
)

// Intent tags a message with the single best-matching user intention.
type Intent string

// Intents recognized by ExtractInfo, listed in match priority order.
const (
	IntentPriceInquiry   Intent = "price_inquiry"
	IntentPurchase       Intent = "purchase"
	IntentHoursInquiry   Intent = "hours_inquiry"
	IntentContactInquiry Intent = "contact_inquiry"
)

// Info is the best-effort information bag extracted from one message.
// Empty fields mean nothing was captured; every field is advisory.
type Info struct {
	Name              string
	MentionedProducts []string
	Intent            Intent
}

// toolRule binds a tool name to its trigger keywords. Declaration order
// is the selection priority: the first tool with a matching keyword wins.
type toolRule struct {
	name     string
	keywords []string
}

var toolRules = []toolRule{
	{"BuscarProducto", []string{"producto", "cupcake", "torta", "pastel", "galleta", "cheesecake", "pie", "dona"}},
	{"ConsultarHorario", []string{"horario", "abierto", "cierra", "disponible", "tiempo"}},
	{"ConsultarContacto", []string{"contacto", "teléfono", "telefono", "dirección", "direccion", "email"}},
	{"ProcesarPedido", []string{"pedido", "orden", "comprar", "quiero", "necesito"}},
}

// productKeywords are the category words scanned for product mentions.
var productKeywords = []string{"cupcake", "torta", "pastel", "galleta", "cheesecake", "pie", "dona"}

// saveKeywords are the self-disclosure phrases that signal the message
// carries information worth persisting to the user context.
var saveKeywords = []string{
	"mi nombre es", "me llamo", "soy",
	"me gusta", "prefiero", "me interesa",
}

// DecideResponseStyle picks the reply style for the current turn. The
// priority chain is fixed: first contact (two or fewer recorded
// messages) is answered in detail, a known name triggers
// personalization, everything else stays brief.
func DecideResponseStyle(ctx memory.ContextSummary) Style {
	if ctx.MessageCount <= 2 {
		return StyleDetailed
	}
	if ctx.Name != "" {
		return StylePersonalized
	}
	return StyleBrief
}

// SelectTool returns the first tool, in declared priority order, whose
// name is in available and whose keywords match the message as a
// case-insensitive substring. At most one tool is ever selected; the
// boolean result reports whether any matched.
func SelectTool(message string, available []string) (string, bool) {
	lower := strings.ToLower(message)
	avail := make(map[string]bool, len(available))
	for _, name := range available {
		avail[name] = true
	}
	for _, rule := range toolRules {
		if !avail[rule.name] {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name, true
			}
		}
	}
	return "", false
}

// ShouldSaveContext reports whether the message contains one of the
// fixed self-disclosure phrases. Auxiliary signal only.
func ShouldSaveContext(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range saveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractInfo performs best-effort lexical extraction from the message:
// a name introduced by "mi nombre es" or "me llamo", product category
// mentions, and a single intent tag assigned by first-matching keyword
// group (price > purchase > hours > contact). Ambiguous input yields
// possibly-wrong results; consumers treat every field as advisory.
func ExtractInfo(message string) Info {
	var info Info
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "mi nombre es"):
		info.Name = tokenAfter(message, "nombre", 2)
	case strings.Contains(lower, "me llamo"):
		info.Name = tokenAfter(message, "llamo", 1)
	}

	for _, kw := range productKeywords {
		if strings.Contains(lower, kw) {
			info.MentionedProducts = append(info.MentionedProducts, kw)
		}
	}

	switch {
	case containsAny(lower, "precio", "cuesta", "valor"):
		info.Intent = IntentPriceInquiry
	case containsAny(lower, "pedido", "comprar", "quiero"):
		info.Intent = IntentPurchase
	case containsAny(lower, "horario", "abierto"):
		info.Intent = IntentHoursInquiry
	case containsAny(lower, "contacto", "teléfono"):
		info.Intent = IntentContactInquiry
	}

	return info
}

// tokenAfter finds the trigger token and captures the word offset
// positions later, capitalized. Returns "" when the message is too short.
func tokenAfter(message, trigger string, offset int) string {
	fields := strings.Fields(message)
	for i, f := range fields {
		if strings.ToLower(f) == trigger && i+offset < len(fields) {
			return capitalize(fields[i+offset])
		}
	}
	return ""
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// AvailableTools lists every tool name SelectTool can choose from, in
// priority order.
func AvailableTools() []string {
	names := make([]string, len(toolRules))
	for i, r := range toolRules {
		names[i] = r.name
	}
	return names
}
