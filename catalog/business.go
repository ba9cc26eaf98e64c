package catalog

import "fmt"

// BusinessInfo holds the static storefront facts surfaced by the
// schedule and contact tools.
type BusinessInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// DefaultBusinessInfo is the storefront record for the DulceAI bakery.
var DefaultBusinessInfo = BusinessInfo{
	Name:    "DulceAI",
	Phone:   "+57 300 123 4567",
	Email:   "info@dulceai.com",
	Address: "Calle 123 #45-67, Bogotá",
	Hours:   "Lunes a Sábado: 8:00 AM - 8:00 PM. Domingo cerrado a las 6:00 PM.",
}

// HoursText formats the opening hours for direct display to the user.
func (b BusinessInfo) HoursText() string {
	return fmt.Sprintf("Horarios de atención:\n%s", b.Hours)
}

// ContactText formats the contact block for direct display to the user.
func (b BusinessInfo) ContactText() string {
	return fmt.Sprintf(`Información de contacto:

📞 Teléfono: %s
📧 Email: %s
📍 Dirección: %s`, b.Phone, b.Email, b.Address)
}
