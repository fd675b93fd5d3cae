package tui

import (
	"context"
	"strings"

	"mediarental/internal/media"
	"mediarental/internal/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ProductsLoadedMsg struct {
	Products map[string]models.ProductInfo
	Err      error
}

type RentersLoadedMsg struct {
	ProductID string
	Renters   map[string]models.CustomerInfo
	Err       error
}

// ProductsModel lists available products; it reloads every time the screen
// is opened and on "r".
type ProductsModel struct {
	svc      *media.Service
	loading  bool
	products map[string]models.ProductInfo
	err      error
	width    int
	height   int
}

func NewProductsModel(svc *media.Service) *ProductsModel {
	return &ProductsModel{svc: svc}
}

func (m *ProductsModel) Init() tea.Cmd {
	m.loading = true
	return m.load()
}

func (m *ProductsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ProductsModel) load() tea.Cmd {
	return func() tea.Msg {
		products, err := m.svc.ShowAvailableProducts(context.Background())
		return ProductsLoadedMsg{Products: products, Err: err}
	}
}

func (m *ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProductsLoadedMsg:
		m.loading = false
		m.products = msg.Products
		m.err = msg.Err
	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *ProductsModel) View() string {
	adaptiveTitleStyle, _, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)
	title := adaptiveTitleStyle.Render("📦 Available products")

	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case m.err != nil:
		body = errorStyle.Render("Error: " + m.err.Error())
	default:
		body = RenderProducts(m.products)
	}

	help := adaptiveHelpStyle.Render("r: Reload • Esc: Back to menu")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

// RentalsModel asks for a product ID and lists its renters.
type RentalsModel struct {
	svc     *media.Service
	input   textinput.Model
	loading bool
	queried string
	renters map[string]models.CustomerInfo
	err     error
	width   int
	height  int
}

func NewRentalsModel(svc *media.Service) *RentalsModel {
	input := textinput.New()
	input.Placeholder = "prd001"
	input.Focus()

	return &RentalsModel{svc: svc, input: input}
}

func (m *RentalsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RentalsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *RentalsModel) load(productID string) tea.Cmd {
	return func() tea.Msg {
		renters, err := m.svc.ShowRentals(context.Background(), productID)
		return RentersLoadedMsg{ProductID: productID, Renters: renters, Err: err}
	}
}

func (m *RentalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RentersLoadedMsg:
		m.loading = false
		m.queried = msg.ProductID
		m.renters = msg.Renters
		m.err = msg.Err
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			productID := strings.TrimSpace(m.input.Value())
			if productID == "" || m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.load(productID)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RentalsModel) View() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)
	title := adaptiveTitleStyle.Render("👥 Product renters")
	form := adaptiveFormStyle.Render(labelStyle.Render("Product ID:") + "\n" + m.input.View())

	var body string
	switch {
	case m.loading:
		body = "Loading..."
	case m.err != nil:
		body = errorStyle.Render("Error: " + m.err.Error())
	case m.queried != "":
		body = labelStyle.Render("Renters of "+m.queried) + "\n" + RenderRenters(m.renters)
	}

	help := adaptiveHelpStyle.Render("Enter: Search • Esc: Back to menu")
	return lipgloss.JoinVertical(lipgloss.Left, title, form, body, help)
}
