package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dpshade/vidgen/internal/models"
)

// templateDelegate renders saved templates as two-line cards
type templateDelegate struct{}

func (d templateDelegate) Height() int                               { return 2 }
func (d templateDelegate) Spacing() int                              { return 1 }
func (d templateDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d templateDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(models.Template)
	if !ok {
		return
	}

	title := "  " + item.Title()
	desc := "  " + item.Description()

	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("▶ " + item.Title())
	} else {
		title = lipgloss.NewStyle().Foreground(ColorText).Render(title)
	}
	desc = lipgloss.NewStyle().Foreground(ColorTextDim).Render(desc)

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

// TemplateList shows saved templates with a fuzzy query line. Filtering
// goes through a search function so the list and the store agree on ranking.
type TemplateList struct {
	list     list.Model
	query    string
	search   func(string) []models.Template
	querying bool
}

// NewTemplateList creates a list backed by search
func NewTemplateList(search func(string) []models.Template) *TemplateList {
	l := list.New([]list.Item{}, templateDelegate{}, 50, 12)
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	keyMap := list.DefaultKeyMap()
	keyMap.ShowFullHelp = key.NewBinding(key.WithKeys("ctrl+h"))
	keyMap.CloseFullHelp = key.NewBinding(key.WithKeys("ctrl+h"))
	keyMap.Quit = key.NewBinding(key.WithDisabled())
	keyMap.ForceQuit = key.NewBinding(key.WithDisabled())
	l.KeyMap = keyMap
	l.SetShowPagination(true)

	return &TemplateList{
		list:   l,
		search: search,
	}
}

// Refresh reloads items for the current query
func (t *TemplateList) Refresh() {
	templates := t.search(t.query)
	items := make([]list.Item, len(templates))
	for i, tmpl := range templates {
		items[i] = tmpl
	}
	t.list.SetItems(items)
}

// SetSize updates the list size
func (t *TemplateList) SetSize(width, height int) {
	t.list.SetSize(max(20, width), max(3, height))
}

// Selected returns the highlighted template
func (t *TemplateList) Selected() (models.Template, bool) {
	item, ok := t.list.SelectedItem().(models.Template)
	return item, ok
}

// Len returns the number of visible templates
func (t *TemplateList) Len() int {
	return len(t.list.Items())
}

// Querying reports whether keystrokes go to the query line
func (t *TemplateList) Querying() bool {
	return t.querying
}

// StartQuery routes keystrokes to the query line
func (t *TemplateList) StartQuery() {
	t.querying = true
}

// Query returns the active fuzzy query
func (t *TemplateList) Query() string {
	return t.query
}

// Update handles navigation, or query editing while querying
func (t *TemplateList) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && t.querying {
		switch keyMsg.Type {
		case tea.KeyEsc:
			t.querying = false
			t.query = ""
			t.Refresh()
		case tea.KeyEnter:
			t.querying = false
		case tea.KeyBackspace:
			if r := []rune(t.query); len(r) > 0 {
				t.query = string(r[:len(r)-1])
				t.Refresh()
			}
		case tea.KeySpace:
			t.query += " "
			t.Refresh()
		case tea.KeyRunes:
			t.query += string(keyMsg.Runes)
			t.Refresh()
		}
		return nil
	}

	var cmd tea.Cmd
	t.list, cmd = t.list.Update(msg)
	return cmd
}

// View renders the query line and the list
func (t *TemplateList) View() string {
	var header string
	switch {
	case t.querying:
		header = StyleSubtitle.Render("Search: ") + t.query + "█"
	case strings.TrimSpace(t.query) != "":
		header = StyleTextMuted.Render(fmt.Sprintf("Search: %s (%d matches)", t.query, t.Len()))
	default:
		header = StyleTextDim.Render("/ to search templates")
	}

	if t.Len() == 0 {
		empty := "No saved templates yet."
		if t.query != "" {
			empty = "No templates match."
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, "", StyleTextMuted.Render(empty))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", t.list.View())
}
