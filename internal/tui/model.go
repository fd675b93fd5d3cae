package tui

import (
	"fmt"

	"mediarental/internal/media"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Screen int

const (
	MenuScreen Screen = iota
	ImportScreen
	ProductsScreen
	RentalsScreen
)

type Model struct {
	currentScreen Screen
	menuModel     *MenuModel
	importModel   *ImportModel
	productsModel *ProductsModel
	rentalsModel  *RentalsModel
	err           error
	quitting      bool
	width         int
	height        int
}

func NewModel(svc *media.Service) Model {
	return Model{
		currentScreen: MenuScreen,
		menuModel:     NewMenuModel(),
		importModel:   NewImportModel(svc),
		productsModel: NewProductsModel(svc),
		rentalsModel:  NewRentalsModel(svc),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.importModel.SetSize(msg.Width, msg.Height)
		m.productsModel.SetSize(msg.Width, msg.Height)
		m.rentalsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// text inputs on other screens need the key
			if m.currentScreen == MenuScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.currentScreen != MenuScreen {
				m.currentScreen = MenuScreen
				m.err = nil
				return m, nil
			}
		}

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		m.err = nil
		switch msg.Screen {
		case ImportScreen:
			return m, m.importModel.Init()
		case ProductsScreen:
			return m, m.productsModel.Init()
		case RentalsScreen:
			return m, m.rentalsModel.Init()
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	// results belong to the screen that started the work, even after Esc
	case ImportCompleteMsg, spinner.TickMsg:
		_, cmd := m.importModel.Update(msg)
		return m, cmd
	case ProductsLoadedMsg:
		_, cmd := m.productsModel.Update(msg)
		return m, cmd
	case RentersLoadedMsg:
		_, cmd := m.rentalsModel.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case MenuScreen:
		_, cmd = m.menuModel.Update(msg)
	case ImportScreen:
		_, cmd = m.importModel.Update(msg)
	case ProductsScreen:
		_, cmd = m.productsModel.Update(msg)
	case RentalsScreen:
		_, cmd = m.rentalsModel.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var content string
	switch m.currentScreen {
	case MenuScreen:
		content = m.menuModel.View()
	case ImportScreen:
		content = m.importModel.View()
	case ProductsScreen:
		content = m.productsModel.View()
	case RentalsScreen:
		content = m.rentalsModel.View()
	}

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return content
}

type ScreenChangeMsg struct {
	Screen Screen
}

type ErrorMsg struct {
	Err error
}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
