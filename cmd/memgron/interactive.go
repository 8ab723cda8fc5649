package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/memgron/memgron/decode"
	"github.com/memgron/memgron/record"
	"github.com/memgron/memgron/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	entityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err        error
	layoutFile string
	dataFile   string
	orderStr   string
	records    []*record.Record
	buf        []byte
	viewport   viewport.Model
	selected   int
	width      int
	height     int
	ready      bool
	state      browserState
}

type browserState int

const (
	stateSelectEntity browserState = iota
	stateViewFields
)

type loadedMsg struct {
	err     error
	records []*record.Record
	buf     []byte
}

func newBrowserModel(layoutFile, dataFile, orderStr string) *browserModel {
	return &browserModel{
		layoutFile: layoutFile,
		dataFile:   dataFile,
		orderStr:   orderStr,
		state:      stateSelectEntity,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return m.load
}

func (m *browserModel) load() tea.Msg {
	records, buf, err := loadInputs(m.layoutFile, m.dataFile, "", m.orderStr)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{records: records, buf: buf}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectEntity && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectEntity && m.selected < len(m.records)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectEntity && len(m.records) > 0 {
				m.viewport.SetContent(m.fieldView(m.records[m.selected]))
				m.viewport.GotoTop()
				m.state = stateViewFields
			}

		case "esc":
			if m.state == stateViewFields {
				m.state = stateSelectEntity
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.buf = msg.buf
	}

	if m.state == stateViewFields {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// fieldView decodes one record and renders its fields, one styled
// "path = value" line each; undecodable fields render their error.
func (m *browserModel) fieldView(rec *record.Record) string {
	d := decode.New(rec.ByteOrder)
	var b strings.Builder
	for i := range rec.Layout {
		f := &rec.Layout[i]
		v, err := d.DecodeField(f, m.buf)
		if err != nil {
			fmt.Fprintf(&b, "%s = %s\n",
				pathStyle.Render(f.Name()),
				errorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintf(&b, "%s = %s\n",
			pathStyle.Render(v.Path),
			valueStyle.Render(render.Literal(v)))
	}
	return b.String()
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	switch m.state {
	case stateSelectEntity:
		b.WriteString(titleStyle.Render("memgron — " + m.layoutFile))
		b.WriteString("\n\n")
		if len(m.records) == 0 {
			b.WriteString(helpStyle.Render("loading..."))
			break
		}
		for i, rec := range m.records {
			line := fmt.Sprintf("%s  %s  (%d fields)",
				rec.Scope.String(), rec.Name, len(rec.Layout))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(entityStyle.Render("  " + line))
			}
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select · enter view · q quit"))

	case stateViewFields:
		rec := m.records[m.selected]
		b.WriteString(titleStyle.Render(rec.Name))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll · esc back · q quit"))
	}

	return b.String()
}

func runInteractive(layoutFile, dataFile, orderStr string) error {
	p := tea.NewProgram(newBrowserModel(layoutFile, dataFile, orderStr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
