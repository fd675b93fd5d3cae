package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarental/internal/media"
	"mediarental/internal/models"
)

func TestRenderProductsSorted(t *testing.T) {
	out := RenderProducts(map[string]models.ProductInfo{
		"prd003": {Description: "Queen mattress", ProductType: "bedroom", QuantityAvailable: 10},
		"prd001": {Description: "60-inch TV stand", ProductType: "livingroom", QuantityAvailable: 3},
	})

	first := strings.Index(out, "prd001")
	second := strings.Index(out, "prd003")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, out, "Queen mattress")
	assert.Contains(t, out, "10")
}

func TestRenderEmpty(t *testing.T) {
	assert.Contains(t, RenderProducts(nil), "No products available")
	assert.Contains(t, RenderRenters(map[string]models.CustomerInfo{}), "No customers rent this product")
}

func TestRenderRenters(t *testing.T) {
	out := RenderRenters(map[string]models.CustomerInfo{
		"user001": {Name: "Elisa Miles", Address: "4490 Union Street", PhoneNumber: "206-922-0882", Email: "elisa.miles@yahoo.com"},
	})

	assert.Contains(t, out, "user001")
	assert.Contains(t, out, "elisa.miles@yahoo.com")
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ScreenChangeMsg{Screen: ProductsScreen}, cmd())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ScreenChangeMsg{Screen: RentalsScreen}, cmd())
}

func TestModelQuitOnlyFromMenu(t *testing.T) {
	m := NewModel(media.NewService(nil, nil))
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}

	next, _ := m.Update(ScreenChangeMsg{Screen: RentalsScreen})
	next, _ = next.Update(q)
	assert.False(t, next.(Model).quitting)
	assert.Equal(t, "q", next.(Model).rentalsModel.input.Value())

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, MenuScreen, next.(Model).currentScreen)

	next, _ = next.Update(q)
	assert.True(t, next.(Model).quitting)
}

func TestImportModelShowsResult(t *testing.T) {
	m := NewImportModel(nil)
	assert.True(t, m.isFormValid())

	m.Update(ImportCompleteMsg{Result: media.ImportResult{
		Added:  media.Counts{Products: 5, Customers: 4},
		Errors: media.Counts{Rentals: 1},
	}})

	assert.Equal(t, ImportResultState, m.state)
	view := m.View()
	assert.Contains(t, view, "missing files")
	assert.Contains(t, view, "customers")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ImportInputState, m.state)
}

func TestImportModelRequiresAllFields(t *testing.T) {
	m := NewImportModel(nil)
	m.inputs[rentalsInput].SetValue("  ")
	assert.False(t, m.isFormValid())
}

type emptyStore struct{}

func (emptyStore) InsertRecord(context.Context, string, any) error { return nil }

func (emptyStore) FindRecords(context.Context, string, any, any) error { return nil }

type emptyConnector struct{}

func (emptyConnector) WithStore(_ context.Context, fn func(media.Store) error) error {
	return fn(emptyStore{})
}

// runCmd executes cmd and flattens batches into the resulting messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestRentalsResultAfterLeavingScreen(t *testing.T) {
	var m tea.Model = NewModel(media.NewService(emptyConnector{}, nil))

	m, _ = m.Update(ScreenChangeMsg{Screen: RentalsScreen})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("prd001")})
	m, search := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, search)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	for _, msg := range runCmd(search) {
		m, _ = m.Update(msg)
	}

	m, _ = m.Update(ScreenChangeMsg{Screen: RentalsScreen})
	rentals := m.(Model).rentalsModel
	assert.False(t, rentals.loading)
	assert.Equal(t, "prd001", rentals.queried)

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, again)
}

func TestImportResultAfterLeavingScreen(t *testing.T) {
	var m tea.Model = NewModel(media.NewService(emptyConnector{}, nil))

	m, _ = m.Update(ScreenChangeMsg{Screen: ImportScreen})
	m, started := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, started)
	assert.Equal(t, ImportProgressState, m.(Model).importModel.state)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	for _, msg := range runCmd(started) {
		m, _ = m.Update(msg)
	}

	m, _ = m.Update(ScreenChangeMsg{Screen: ImportScreen})
	importModel := m.(Model).importModel
	assert.Equal(t, ImportResultState, importModel.state)
	assert.Equal(t, media.Counts{Products: 1, Customers: 1, Rentals: 1}, importModel.result.Errors)
}

func TestProductsResultAfterLeavingScreen(t *testing.T) {
	var m tea.Model = NewModel(media.NewService(emptyConnector{}, nil))

	m, load := m.Update(ScreenChangeMsg{Screen: ProductsScreen})
	require.NotNil(t, load)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	for _, msg := range runCmd(load) {
		m, _ = m.Update(msg)
	}

	assert.False(t, m.(Model).productsModel.loading)
}
