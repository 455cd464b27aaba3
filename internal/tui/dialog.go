package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/swname/internal/starname"
)

// dialogModel is the modal that shows a generated name.
type dialogModel struct {
	name    starname.Name
	flash   string
	flashID int
	copy    func(string) error
}

var dialogBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(accent).
	Padding(1, 4).
	MarginLeft(2)

func newDialogModel(name starname.Name) dialogModel {
	return dialogModel{name: name, copy: copyToClipboard}
}

func (m dialogModel) Init() tea.Cmd {
	return nil
}

func (m dialogModel) Update(msg tea.Msg) (dialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

func (m dialogModel) handleKey(msg tea.KeyMsg) (dialogModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyEnter) || key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return dismissDialogMsg{} }
	}

	if msg.String() == "c" {
		if err := m.copy(m.name.String()); err != nil {
			return m.setFlash("copy: " + err.Error())
		}
		return m.setFlash("copied!")
	}

	return m, nil
}

func (m dialogModel) setFlash(msg string) (dialogModel, tea.Cmd) {
	m.flash = msg
	m.flashID = nextFlashID()
	return m, clearFlashAfter(m.flashID)
}

func (m dialogModel) View() string {
	title := zstyle.Title.Render("Your Star Wars name")
	name := zstyle.Highlight.Render(m.name.String())
	hint := zstyle.MutedText.Render("enter ok  c copy")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", name, "", hint)
	s := "\n" + dialogBox.Render(body) + "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}
	return s
}
