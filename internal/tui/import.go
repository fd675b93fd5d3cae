package tui

import (
	"context"
	"fmt"
	"strings"

	"mediarental/internal/media"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ImportState int

const (
	ImportInputState ImportState = iota
	ImportProgressState
	ImportResultState
)

const (
	dirInput = iota
	productsInput
	customersInput
	rentalsInput
	inputCount
)

type ImportCompleteMsg struct {
	Result media.ImportResult
	Err    error
}

type ImportModel struct {
	svc          *media.Service
	state        ImportState
	inputs       []textinput.Model
	focusedInput int
	spinner      spinner.Model
	result       media.ImportResult
	err          error
	width        int
	height       int
}

func NewImportModel(svc *media.Service) *ImportModel {
	inputs := make([]textinput.Model, inputCount)
	for i, def := range []string{".", "products.csv", "customers.csv", "rentals.csv"} {
		in := textinput.New()
		in.Placeholder = def
		in.SetValue(def)
		inputs[i] = in
	}
	inputs[dirInput].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accent)

	return &ImportModel{
		svc:     svc,
		state:   ImportInputState,
		inputs:  inputs,
		spinner: s,
	}
}

func (m *ImportModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ImportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case ImportInputState:
			return m.updateInputState(msg)
		case ImportResultState:
			if msg.String() == "enter" || msg.String() == " " {
				m.reset()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		if m.state == ImportProgressState {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case ImportCompleteMsg:
		m.result = msg.Result
		m.err = msg.Err
		m.state = ImportResultState
		return m, nil
	}

	return m, nil
}

func (m *ImportModel) updateInputState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusedInput = (m.focusedInput + 1) % inputCount
		m.updateInputFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusedInput = (m.focusedInput - 1 + inputCount) % inputCount
		m.updateInputFocus()
		return m, nil
	case "enter":
		if m.isFormValid() {
			return m.startImport()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

func (m *ImportModel) updateInputFocus() {
	for i := range m.inputs {
		if i == m.focusedInput {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *ImportModel) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

func (m *ImportModel) isFormValid() bool {
	for i := range m.inputs {
		if m.value(i) == "" {
			return false
		}
	}
	return true
}

func (m *ImportModel) startImport() (tea.Model, tea.Cmd) {
	m.state = ImportProgressState
	return m, tea.Batch(m.spinner.Tick, m.performImport())
}

func (m *ImportModel) performImport() tea.Cmd {
	dir := m.value(dirInput)
	products := m.value(productsInput)
	customers := m.value(customersInput)
	rentals := m.value(rentalsInput)

	return func() tea.Msg {
		result, err := m.svc.ImportData(context.Background(), dir, products, customers, rentals)
		return ImportCompleteMsg{Result: result, Err: err}
	}
}

func (m *ImportModel) reset() {
	m.state = ImportInputState
	m.result = media.ImportResult{}
	m.err = nil
	m.focusedInput = dirInput
	m.updateInputFocus()
}

func (m *ImportModel) View() string {
	switch m.state {
	case ImportInputState:
		return m.renderInputForm()
	case ImportProgressState:
		return m.renderProgress()
	case ImportResultState:
		return m.renderResult()
	}
	return ""
}

func (m *ImportModel) renderInputForm() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("📥 Import CSV files")

	labels := []string{"Directory:", "Products file:", "Customers file:", "Rentals file:"}
	var fields []string
	for i, label := range labels {
		fields = append(fields, labelStyle.Render(label)+"\n"+m.inputs[i].View())
	}
	form := adaptiveFormStyle.Render(strings.Join(fields, "\n\n"))

	help := adaptiveHelpStyle.Render("Tab/Shift+Tab: Navigate • Enter: Import • Esc: Back to menu")

	content := lipgloss.JoinVertical(lipgloss.Left, title, form, help)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
	}
	return content
}

func (m *ImportModel) renderProgress() string {
	title := titleStyle.Render("📥 Importing CSV files...")
	body := fmt.Sprintf("%s Loading %s into the media database", m.spinner.View(), m.value(dirInput))
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func (m *ImportModel) renderResult() string {
	title := titleStyle.Render("📥 Import complete")

	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render(fmt.Sprintf("❌ Import failed: %v", m.err))
	case m.result.Errors != (media.Counts{}):
		status = warningStyle.Render("⚠️  Import finished with missing files")
	default:
		status = successStyle.Render("✅ Import completed successfully!")
	}

	t := newTable("SOURCE", "ADDED", "ERRORS").
		Row("products", fmt.Sprint(m.result.Added.Products), fmt.Sprint(m.result.Errors.Products)).
		Row("customers", fmt.Sprint(m.result.Added.Customers), fmt.Sprint(m.result.Errors.Customers)).
		Row("rentals", fmt.Sprint(m.result.Added.Rentals), fmt.Sprint(m.result.Errors.Rentals))

	help := helpStyle.Render("Enter: Import again • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, t.Render(), help)
}
