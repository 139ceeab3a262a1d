// Package tui provides the interactive statement file picker.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user quits without selecting a file.
var ErrCanceled = errors.New("selection canceled")

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// pickerModel wraps the bubbles filepicker with statement-specific filtering.
type pickerModel struct {
	picker   filepicker.Model
	selected string
	errMsg   string
	quitting bool
}

func newPickerModel(dir string) pickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf", ".csv", ".ofx", ".qfx"}
	fp.CurrentDirectory = dir
	fp.Height = 15
	return pickerModel{picker: fp}
}

// Init starts the filepicker.
func (m pickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles key events and file selection.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.errMsg = fmt.Sprintf("%s is not a statement file (pdf, csv, ofx)", path)
	}

	return m, cmd
}

// View renders the picker.
func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select a bank statement"))
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: select • q: quit"))
	return b.String()
}

// PickStatement runs the interactive picker rooted at dir and returns the
// chosen statement path. ErrCanceled means the user backed out.
func PickStatement(dir string) (string, error) {
	final, err := tea.NewProgram(newPickerModel(dir)).Run()
	if err != nil {
		return "", fmt.Errorf("running file picker: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok || m.selected == "" {
		return "", ErrCanceled
	}
	return m.selected, nil
}
