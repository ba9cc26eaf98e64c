package tool

import (
	"fmt"
	"strings"

	"github.com/dulceai/dulceai/catalog"
	"github.com/dulceai/dulceai/planning"
)

// ProductTool resolves product queries against the catalog and formats
// the fixed-structure expert block shown to the model.
type ProductTool struct {
	catalog *catalog.Catalog
}

// NewProductTool creates the BuscarProducto tool over the given catalog.
func NewProductTool(c *catalog.Catalog) *ProductTool {
	return &ProductTool{catalog: c}
}

// Name implements Tool.
func (t *ProductTool) Name() string { return "BuscarProducto" }

// Run looks up the first mentioned product keyword, falling back to the
// whole message when extraction captured nothing. A miss yields the
// structured not-found message offering the full catalog.
func (t *ProductTool) Run(message string, info planning.Info) (string, error) {
	query := message
	if len(info.MentionedProducts) > 0 {
		query = info.MentionedProducts[0]
	}

	p, ok := t.catalog.Lookup(query)
	if !ok {
		return fmt.Sprintf(
			"No encontré un producto específico con '%s'. ¿Te gustaría ver nuestro catálogo completo? "+
				"Tenemos tortas, cupcakes, galletas, cheesecakes, pies, donas, muffins, brownies y macarons.",
			query,
		), nil
	}
	return FormatProduct(p), nil
}

// FormatProduct renders the product block: name, price and description
// first, then each optional expert line only when the field is present.
func FormatProduct(p catalog.Product) string {
	lines := []string{
		fmt.Sprintf("🍰 %s", p.Name),
		fmt.Sprintf("💰 Precio: $%s", catalog.FormatPrice(p.Price)),
		fmt.Sprintf("📝 %s", p.Description),
	}
	if p.Size != "" {
		lines = append(lines, fmt.Sprintf("📏 Tamaño: %s", p.Size))
	}
	if p.Ingredients != "" {
		lines = append(lines, fmt.Sprintf("🥄 Ingredientes: %s", p.Ingredients))
	}
	if p.Allergens != "" {
		lines = append(lines, fmt.Sprintf("⚠️ Alérgenos: %s", p.Allergens))
	}
	if p.Storage != "" {
		lines = append(lines, fmt.Sprintf("❄️ Conservación: %s", p.Storage))
	}
	if p.Customization != "" {
		lines = append(lines, fmt.Sprintf("✨ Personalización: %s", p.Customization))
	}
	return strings.Join(lines, "\n")
}
