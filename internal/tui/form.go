package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/swname/internal/starname"
)

const (
	fieldFirst = iota
	fieldLast
	fieldCity
	fieldMaiden
	fieldCount

	// focusButton is the generate button, after the last text field.
	focusButton = fieldCount
	focusStops  = fieldCount + 1
)

// formFields maps input slots to their validation role.
var formFields = [fieldCount]starname.Field{
	starname.FirstName,
	starname.LastName,
	starname.CityBorn,
	starname.MaidenName,
}

const flashDuration = 3 * time.Second

// formModel is the four-field entry form with inline validation.
type formModel struct {
	inputs   [fieldCount]textinput.Model
	verdicts [fieldCount]starname.Verdict
	// touched fields show their verdict; untouched ones stay quiet
	touched [fieldCount]bool
	focus   int
	flash   string
	flashID int
}

// flashMsg clears the flash with the matching id after a timeout.
type flashMsg struct {
	id int
}

// flashSeq hands out flash ids shared by the form and the dialog, so a tick
// scheduled by one view never matches a flash set by the other.
var flashSeq atomic.Int64

func nextFlashID() int {
	return int(flashSeq.Add(1))
}

func newFormModel(charLimit int) formModel {
	var m formModel
	for i := range fieldCount {
		ti := textinput.New()
		if charLimit > 0 {
			ti.CharLimit = charLimit
		}
		ti.Width = 32
		ti.Prompt = ""
		ti.Placeholder = formFields[i].Label()
		m.inputs[i] = ti
		m.verdicts[i] = starname.Validate(formFields[i], "")
	}

	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlG:
		return m, m.submit()
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "enter":
		if m.focus == focusButton {
			return m, m.submit()
		}
		return m.moveFocus(1)
	}

	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) (formModel, tea.Cmd) {
	if m.focus < fieldCount {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + focusStops) % focusStops
	if m.focus < fieldCount {
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// updateInput forwards msg to the focused field and re-validates it when its
// value changed.
func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	if m.focus >= fieldCount {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		m.touched[m.focus] = true
		m.verdicts[m.focus] = starname.Validate(formFields[m.focus], after)
	}

	return m, cmd
}

// input snapshots the current field values.
func (m formModel) input() starname.Input {
	return starname.Input{
		First:      m.inputs[fieldFirst].Value(),
		Last:       m.inputs[fieldLast].Value(),
		CityBorn:   m.inputs[fieldCity].Value(),
		MaidenName: m.inputs[fieldMaiden].Value(),
	}
}

func (m formModel) submit() tea.Cmd {
	in := m.input()
	return func() tea.Msg { return generateMsg{input: in} }
}

// setFlash shows msg and schedules its removal. An empty msg clears the
// flash at once.
func (m formModel) setFlash(msg string) (formModel, tea.Cmd) {
	m.flash = msg
	m.flashID = nextFlashID()
	if msg == "" {
		return m, nil
	}
	return m, clearFlashAfter(m.flashID)
}

func clearFlashAfter(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashMsg{id: id}
	})
}

func (m formModel) View() string {
	title := zstyle.Title.Render("enter your details")
	s := fmt.Sprintf("\n  %s\n\n", title)

	for i := range fieldCount {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-22s", formFields[i].Label()))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}

		line := fmt.Sprintf("  %s%s %s", cursor, label, m.inputs[i].View())
		if m.touched[i] {
			if msg := m.verdicts[i].Message(); msg != "" {
				line += "  " + zstyle.StatusErr.Render(msg)
			}
		}
		s += line + "\n"
	}

	s += "\n"
	button := "[ generate ]"
	if m.focus == focusButton {
		s += "  " + zstyle.Highlight.Render("> "+button) + "\n"
	} else {
		s += "    " + button + "\n"
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusWarn.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
