package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// form is a small vertical stack of labelled text inputs with one focused
// field. Used by the setup page, the profile page and the schedule modal.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(labels ...string) *form {
	f := &form{labels: labels}
	for _, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 256
		ti.Prompt = ""
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// Focus focuses the current field.
func (f *form) Focus() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := f.inputs[f.focus].Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Blur unfocuses every field.
func (f *form) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Next advances focus to the following field, wrapping.
func (f *form) Next() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.Focus()
}

// Prev moves focus to the previous field, wrapping.
func (f *form) Prev() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + len(f.inputs) - 1) % len(f.inputs)
	return f.Focus()
}

// Update routes a message to the focused field.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Values returns the trimmed field values in order.
func (f *form) Values() []string {
	vals := make([]string, len(f.inputs))
	for i := range f.inputs {
		vals[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return vals
}

// SetValues fills the fields in order and focuses the first.
func (f *form) SetValues(vals ...string) {
	for i := range f.inputs {
		if i < len(vals) {
			f.inputs[i].SetValue(vals[i])
			f.inputs[i].CursorEnd()
		}
	}
	f.inputs[f.focus].Blur()
	f.focus = 0
}

// Reset clears every field and rewinds focus.
func (f *form) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
}

// View renders the labelled fields, marking the focused one.
func (f *form) View() string {
	var b strings.Builder
	for i := range f.inputs {
		marker := "  "
		if i == f.focus {
			marker = "» "
		}
		b.WriteString(marker + labelStyle.Render(f.labels[i]) + "\n")
		b.WriteString("  " + f.inputs[i].View() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
