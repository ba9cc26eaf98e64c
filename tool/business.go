package tool

import (
	"fmt"

	"github.com/dulceai/dulceai/catalog"
	"github.com/dulceai/dulceai/planning"
)

// HoursTool answers schedule questions from the static business record.
type HoursTool struct {
	info catalog.BusinessInfo
}

// NewHoursTool creates the ConsultarHorario tool.
func NewHoursTool(info catalog.BusinessInfo) *HoursTool {
	return &HoursTool{info: info}
}

// Name implements Tool.
func (t *HoursTool) Name() string { return "ConsultarHorario" }

// Run implements Tool.
func (t *HoursTool) Run(string, planning.Info) (string, error) {
	return t.info.HoursText(), nil
}

// ContactTool answers contact questions from the static business record.
type ContactTool struct {
	info catalog.BusinessInfo
}

// NewContactTool creates the ConsultarContacto tool.
func NewContactTool(info catalog.BusinessInfo) *ContactTool {
	return &ContactTool{info: info}
}

// Name implements Tool.
func (t *ContactTool) Name() string { return "ConsultarContacto" }

// Run implements Tool.
func (t *ContactTool) Run(string, planning.Info) (string, error) {
	return t.info.ContactText(), nil
}

// OrderTool acknowledges order intents with a confirmation block. It
// records nothing itself; the orchestrator owns order history.
type OrderTool struct {
	info catalog.BusinessInfo
}

// NewOrderTool creates the ProcesarPedido tool.
func NewOrderTool(info catalog.BusinessInfo) *OrderTool {
	return &OrderTool{info: info}
}

// Name implements Tool.
func (t *OrderTool) Name() string { return "ProcesarPedido" }

// Run implements Tool.
func (t *OrderTool) Run(message string, _ planning.Info) (string, error) {
	return t.FormatConfirmation(fmt.Sprintf("Pedido: %s", message)), nil
}

// FormatConfirmation renders the order confirmation block around the
// given summary line.
func (t *OrderTool) FormatConfirmation(summary string) string {
	return fmt.Sprintf(`✅ Pedido confirmado:

%s

Te contactaremos pronto para confirmar los detalles.
Información de contacto: %s`, summary, t.info.Phone)
}
