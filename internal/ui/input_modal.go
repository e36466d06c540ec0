package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputModal collects a single line of free text: a custom option for a
// category or the name of a template to save
type InputModal struct {
	input     textinput.Model
	title     string
	hint      string
	target    string // Category id for custom options, empty for templates
	isActive  bool
	submitted bool
	value     string
	width     int
	height    int
}

var (
	modalSubmit = key.NewBinding(key.WithKeys("enter"))
	modalCancel = key.NewBinding(key.WithKeys("esc"))
)

// NewInputModal creates an inactive modal accepting up to charLimit characters
func NewInputModal(charLimit int) *InputModal {
	input := textinput.New()
	input.CharLimit = charLimit
	input.Width = 50

	return &InputModal{
		input: input,
	}
}

// Open activates the modal with a fresh, focused input
func (m *InputModal) Open(title, placeholder, target string) tea.Cmd {
	m.title = title
	m.target = target
	m.hint = "Enter: save • Esc: cancel"
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.isActive = true
	m.submitted = false
	m.value = ""
	return m.input.Focus()
}

// Close deactivates the modal without submitting
func (m *InputModal) Close() {
	m.isActive = false
	m.input.Blur()
	m.input.SetValue("")
}

// Update handles key input while the modal is active
func (m *InputModal) Update(msg tea.Msg) tea.Cmd {
	if !m.isActive {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, modalCancel):
			m.submitted = false
			m.Close()
			return nil

		case key.Matches(msg, modalSubmit):
			// Blank input keeps the modal open
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.hint = "Please enter some text • Esc: cancel"
				return nil
			}
			m.value = value
			m.submitted = true
			m.Close()
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the modal
func (m *InputModal) View() string {
	if !m.isActive {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	helpStyle := lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorTextDim).
		MarginTop(1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		m.input.View(),
		helpStyle.Render(m.hint),
	)
	return StyleModal.Render(content)
}

// IsActive reports whether the modal is open
func (m *InputModal) IsActive() bool {
	return m.isActive
}

// IsSubmitted reports whether the last interaction submitted a value
func (m *InputModal) IsSubmitted() bool {
	return m.submitted
}

// Consume returns the submitted value and target, clearing the submission
func (m *InputModal) Consume() (value, target string) {
	value, target = m.value, m.target
	m.submitted = false
	m.value = ""
	return value, target
}

// Resize records the screen size used for centering
func (m *InputModal) Resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = min(50, max(10, width-16))
}
