// Package tui implements the interactive constant browser using
// bubbletea.
//
// The browser is a single tea.Model: a filterable list of constants on
// the left of the event loop's lifetime, with an optional detail view
// for the selected constant. TUI state is single-threaded inside the
// bubbletea event loop; do not touch it from other goroutines.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/codata/internal/describe"
	"github.com/leapstack-labs/codata/pkg/constant"
	"github.com/leapstack-labs/codata/pkg/prec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	exactBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Background(lipgloss.Color("22")).
			Padding(0, 1)

	derivedBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Background(lipgloss.Color("58")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// item adapts a constant to the bubbles list.
type item struct {
	c constant.Constant
}

func (i item) Title() string { return i.c.Name() + " (" + i.c.Symbol() + ")" }

func (i item) Description() string {
	info := describe.Constant(i.c)
	if info.Exact {
		return info.Value + " " + info.Unit + " (exact)"
	}
	return info.Value + " " + info.Unit
}

func (i item) FilterValue() string { return i.c.Name() + " " + i.c.Symbol() }

// BrowserModel is the bubbletea model for the constant browser.
type BrowserModel struct {
	list     list.Model
	viewport viewport.Model
	env      *prec.Env

	width  int
	height int

	showDetail bool
	ready      bool
	quitting   bool
}

// NewBrowserModel creates a browser over the given constants. The
// precision environment controls the wide rendering in the detail
// view; nil reads as the default precision.
func NewBrowserModel(constants []constant.Constant, env *prec.Env) BrowserModel {
	items := make([]list.Item, 0, len(constants))
	for _, c := range constants {
		items = append(items, item{c: c})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Physical constants"
	l.SetShowStatusBar(false)
	l.Styles.Title = titleStyle

	return BrowserModel{list: l, env: env}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		footerHeight := 2
		m.list.SetSize(m.width, m.height-footerHeight)

		if !m.ready {
			m.viewport = viewport.New(m.width, m.height-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = m.height - footerHeight
		}
		if m.showDetail {
			m.updateDetail()
		}

	case tea.KeyMsg:
		// While the list filter is active, keys belong to it.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			m.showDetail = !m.showDetail
			if m.showDetail {
				m.updateDetail()
			}
			return m, nil

		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
		}
	}

	if m.showDetail {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	if m.showDetail {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("enter/esc: back to list  q: quit  j/k: scroll"))
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("enter: details  /: filter  q: quit"))
	}
	return b.String()
}

// Selected returns the currently selected constant, if any.
func (m BrowserModel) Selected() (constant.Constant, bool) {
	if it, ok := m.list.SelectedItem().(item); ok {
		return it.c, true
	}
	return constant.Constant{}, false
}

func (m *BrowserModel) updateDetail() {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		m.viewport.SetContent("No constant selected.")
		return
	}
	m.viewport.SetContent(renderDetail(it.c, m.env))
	m.viewport.GotoTop()
}

// renderDetail builds the detail pane: the fixed-precision block plus
// the wide rendering at the configured working precision.
func renderDetail(c constant.Constant, env *prec.Env) string {
	info := describe.Constant(c)
	wide := describe.ConstantAt(c, env)

	var b strings.Builder
	b.WriteString(titleStyle.Render(info.Description + " (" + info.Symbol + ")"))
	b.WriteString("\n\n")

	if info.Exact {
		b.WriteString(exactBadge.Render("exact"))
		b.WriteString("\n\n")
	}
	if info.Derived {
		b.WriteString(derivedBadge.Render("derived"))
		b.WriteString("\n\n")
	}

	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label + ": "))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	line("Value", info.Value+" "+info.Unit)
	if !info.Exact {
		line("Standard uncertainty", info.Uncertainty+" "+info.Unit)
		line("Relative standard uncertainty", info.RelativeUncertainty)
	}
	line("Reference", info.Reference)
	b.WriteString("\n")
	line("Wide value", wide.Value)
	line("Working precision", strconv.Itoa(int(wide.Precision))+" bits")

	return b.String()
}
