package agent

import "strings"

// fallbackReplies maps message keywords to canned replies used when the
// model collaborator is unavailable. Scanned in declaration order;
// first match wins.
var fallbackReplies = []struct {
	keyword string
	reply   string
}{
	{"hola", "¡Hola! 😊 Soy DulceAI. ¿En qué puedo ayudarte?"},
	{"producto", "Tenemos varios productos. ¿Buscas algo específico?"},
	{"precio", "Los precios varían. ¿Qué producto te interesa?"},
	{"pedido", "¡Genial! ¿Qué te gustaría pedir?"},
	{"horario", "Lunes a Sábado: 8:00 AM - 8:00 PM"},
	{"contacto", "Contacto: +57 300 123 4567"},
}

// genericFallback is returned when no keyword matches.
const genericFallback = "Interesante consulta. ¿Podrías ser más específico?"

// FallbackReply picks the deterministic template reply for a message.
// Used whenever the model collaborator is unreachable or the agent is
// not initialized.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, fr := range fallbackReplies {
		if strings.Contains(lower, fr.keyword) {
			return fr.reply
		}
	}
	return genericFallback
}
