package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/codata/pkg/codata"
	"github.com/leapstack-labs/codata/pkg/constant"
	"github.com/leapstack-labs/codata/pkg/prec"
)

func newTestModel(t *testing.T) BrowserModel {
	t.Helper()
	_ = codata.SpeedOfLightInVacuum // ensure the table is registered
	m := NewBrowserModel(constant.List(), prec.NewEnv(128))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(BrowserModel)
}

func TestBrowser_ListView(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Physical constants")
	assert.Contains(t, view, "enter: details")

	_, ok := m.Selected()
	assert.True(t, ok)
}

func TestBrowser_DetailToggle(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(BrowserModel)
	require.True(t, m.showDetail)

	view := m.View()
	assert.Contains(t, view, "Working precision")
	assert.Contains(t, view, "128 bits")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(BrowserModel)
	assert.False(t, m.showDetail)
}

func TestBrowser_QuitClearsView(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(BrowserModel)
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}

func TestItem_Rendering(t *testing.T) {
	it := item{c: codata.SpeedOfLightInVacuum}
	assert.Equal(t, "SpeedOfLightInVacuum (c)", it.Title())
	assert.True(t, strings.HasSuffix(it.Description(), "(exact)"))
	assert.Contains(t, it.FilterValue(), "SpeedOfLightInVacuum")
}
