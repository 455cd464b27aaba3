// Package tui implements the root Bubble Tea model for swname.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/swname/internal/starname"
)

type viewID int

const (
	viewForm viewID = iota
	viewDialog
)

// accent is the header and dialog border colour.
var accent = zstyle.ZburnAccent

// formErrorMessage is the only failure detail shown on submit; per-field
// detail comes from the inline verdicts.
const formErrorMessage = "please fix the errors in the form"

// Options configures the root model.
type Options struct {
	// CharLimit caps each text field. Zero means the textinput default.
	CharLimit int
}

// Model is the root TUI model.
type Model struct {
	version string

	active viewID
	form   formModel
	dialog dialogModel

	// terminal dimensions
	width  int
	height int
}

// generateMsg asks the root model to derive a name from the form values.
type generateMsg struct {
	input starname.Input
}

// dismissDialogMsg closes the result dialog and returns to the form.
type dismissDialogMsg struct{}

// New creates the root TUI model.
func New(version string, opts Options) Model {
	return Model{
		version: version,
		active:  viewForm,
		form:    newFormModel(opts.CharLimit),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generateMsg:
		return m.handleGenerate(msg.input)

	case dismissDialogMsg:
		m.active = viewForm
		return m, m.form.Init()
	}

	return m.updateActive(msg)
}

func (m Model) handleGenerate(in starname.Input) (tea.Model, tea.Cmd) {
	name, err := starname.Generate(in)
	if err != nil {
		slog.Debug("generate", "result", "err", "err", err)
		var cmd tea.Cmd
		m.form, cmd = m.form.setFlash(formErrorMessage)
		return m, cmd
	}

	slog.Debug("generate", "result", "ok")
	m.form, _ = m.form.setFlash("")
	m.dialog = newDialogModel(name)
	m.active = viewDialog
	return m, nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewDialog:
		m.dialog, cmd = m.dialog.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	header := zstyle.RenderHeader("swname", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	var content string
	switch m.active {
	case viewForm:
		content = m.form.View()
	case viewDialog:
		content = m.dialog.View()
		if m.width > 0 {
			// the two extra lines are the blank line above the header and
			// the one below the footer
			body := m.height - lipgloss.Height(header) - lipgloss.Height(sep) - lipgloss.Height(footer) - 2
			content = lipgloss.Place(m.width, body, lipgloss.Center, lipgloss.Center, content)
		}
	}

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewForm:
		return "Star Wars Name Generator"
	case viewDialog:
		return "Your Star Wars Name"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "enter", Desc: "next/generate"},
			{Key: "ctrl+g", Desc: "generate"},
			{Key: "esc", Desc: "quit"},
		}
	case viewDialog:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "ok"},
			{Key: "c", Desc: "copy"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}
