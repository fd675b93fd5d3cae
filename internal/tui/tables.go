package tui

import (
	"slices"
	"strconv"

	"mediarental/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// RenderProducts renders the available products listing ordered by product ID.
func RenderProducts(products map[string]models.ProductInfo) string {
	if len(products) == 0 {
		return warningStyle.Render("No products available")
	}

	t := newTable("PRODUCT ID", "DESCRIPTION", "TYPE", "AVAILABLE")
	for _, id := range sortedKeys(products) {
		p := products[id]
		t.Row(id, p.Description, p.ProductType, strconv.FormatInt(p.QuantityAvailable, 10))
	}
	return t.Render()
}

// RenderRenters renders the customers renting a product ordered by user ID.
func RenderRenters(renters map[string]models.CustomerInfo) string {
	if len(renters) == 0 {
		return warningStyle.Render("No customers rent this product")
	}

	t := newTable("USER ID", "NAME", "ADDRESS", "PHONE", "EMAIL")
	for _, id := range sortedKeys(renters) {
		c := renters[id]
		t.Row(id, c.Name, c.Address, c.PhoneNumber, c.Email)
	}
	return t.Render()
}
