package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	apperrors "github.com/dpshade/vidgen/internal/errors"
	"github.com/dpshade/vidgen/internal/logging"
	"github.com/dpshade/vidgen/internal/service"
)

// Toast texts
const (
	toastSaved   = "Template saved successfully!"
	toastLoaded  = "Template loaded!"
	toastCleared = "Prompt cleared"
	toastDeleted = "Template deleted"
)

const toastDuration = 3 * time.Second

// createGlamourRenderer creates a glamour renderer with improved contrast
// handling. style overrides detection unless it is empty or "auto".
func createGlamourRenderer(style string, wordWrap int) (*glamour.TermRenderer, error) {
	if style != "" && style != "auto" {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wordWrap),
		)
	}

	// Detect terminal capabilities and background
	profile := termenv.ColorProfile()
	hasDarkBg := lipgloss.HasDarkBackground()

	var styleOption glamour.TermRendererOption
	switch {
	case profile != termenv.TrueColor && profile != termenv.ANSI256:
		// Limited color terminals get auto-style
		styleOption = glamour.WithAutoStyle()
	case hasDarkBg:
		styleOption = glamour.WithStandardStyle("dark")
	default:
		styleOption = glamour.WithStandardStyle("light")
	}

	return glamour.NewTermRenderer(
		styleOption,
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(wordWrap),
	)
}

// Tab identifies a top-level view
type Tab int

const (
	TabBuild Tab = iota
	TabPreview
	TabOutput
)

var tabLabels = []string{"Build", "Preview", "Output"}

type focusArea int

const (
	focusOptions focusArea = iota
	focusEditor
)

// restoreCaretMsg reapplies the engine cursor to the editor after the view
// has re-rendered. Only the newest generation is honoured.
type restoreCaretMsg struct{ gen int }

// dismissToastMsg clears the toast it was scheduled for
type dismissToastMsg struct{ seq int }

// previewTickMsg advances the preview animation
type previewTickMsg struct{ gen int }

func restoreCaretCmd(gen int) tea.Cmd {
	return func() tea.Msg {
		return restoreCaretMsg{gen: gen}
	}
}

func dismissToastCmd(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return dismissToastMsg{seq: seq}
	})
}

func previewTickCmd(gen int) tea.Cmd {
	return tea.Tick(previewFrame, func(time.Time) tea.Msg {
		return previewTickMsg{gen: gen}
	})
}

// Options configures the TUI
type Options struct {
	Version      string
	GlamourStyle string // "auto", "dark", "light", ...
	Logger       *log.Logger
}

// Model represents the TUI application state
type Model struct {
	service *service.Service
	opts    Options
	tab     Tab
	focus   focusArea

	// UI components
	editor      textarea.Model
	customModal *InputModal
	saveModal   *InputModal
	templates   *TemplateList
	preview     *Preview
	detail      viewport.Model
	help        help.Model
	keys        KeyMap

	// Builder accordion
	expanded  map[string]bool
	rowCursor int

	showDetail      bool
	showHelp        bool
	glamourRenderer *glamour.TermRenderer

	// Deferred work generations
	caretGen   int
	previewGen int
	toastSeq   int

	toast     string
	toastType string

	errHandler *apperrors.TUIErrorHandler
	logger     *log.Logger

	// Window dimensions
	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(svc *service.Service, opts Options) (*Model, error) {
	initializeColors(opts.GlamourStyle)

	renderer, err := createGlamourRenderer(opts.GlamourStyle, 60)
	if err != nil {
		return nil, fmt.Errorf("failed to create glamour renderer: %w", err)
	}

	logger := logging.OrDiscard(opts.Logger).With("component", "ui")

	expanded := make(map[string]bool)
	if cats := svc.Catalog().Categories(); len(cats) > 0 {
		expanded[cats[0].ID] = true
	}

	detail := viewport.New(80, 20)
	detail.Style = lipgloss.NewStyle()

	m := &Model{
		service:         svc,
		opts:            opts,
		editor:          newEditor(),
		customModal:     NewInputModal(200),
		saveModal:       NewInputModal(80),
		templates:       NewTemplateList(svc.SearchTemplates),
		preview:         NewPreview(),
		detail:          detail,
		help:            help.New(),
		keys:            keys,
		expanded:        expanded,
		glamourRenderer: renderer,
		errHandler:      apperrors.NewTUIErrorHandler(false, logger),
		logger:          logger,
	}
	m.templates.Refresh()
	m.preview.SetConfig(svc.Simulation())
	placeCaret(&m.editor, svc.Text(), len([]rune(svc.Text())))

	// Surface a storage problem found while loading templates
	if err := svc.StorageError(); err != nil {
		m.errorToast(err)
	}
	return m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.toast != "" {
		return dismissToastCmd(m.toastSeq)
	}
	return nil
}

// setToast shows a transient notification, superseding any pending dismissal
func (m *Model) setToast(text, toastType string) tea.Cmd {
	m.toastSeq++
	m.toast = text
	m.toastType = toastType
	return dismissToastCmd(m.toastSeq)
}

// errorToast logs err and shows it as a toast
func (m *Model) errorToast(err error) tea.Cmd {
	handled := m.errHandler.HandleError(err)
	icon, _ := m.errHandler.GetErrorStyle(handled)
	toastType := "error"
	if appErr := apperrors.GetAppError(handled); appErr.Severity == apperrors.SeverityWarning {
		toastType = "warning"
	}
	return m.setToast(icon+" "+m.errHandler.FormatError(handled), toastType)
}

// storageToast reports a persistence failure after a template write
func (m *Model) storageToast() tea.Cmd {
	if err := m.service.StorageError(); err != nil {
		return m.errorToast(err)
	}
	return nil
}

// syncEditor copies the engine text into the editor and schedules the
// caret restoration
func (m *Model) syncEditor() tea.Cmd {
	m.editor.SetValue(m.service.Text())
	m.caretGen++
	return restoreCaretCmd(m.caretGen)
}

func (m *Model) restoreCaret() {
	text := m.service.Text()
	offset, ok := m.service.Cursor()
	if !ok {
		offset = len([]rune(text))
	}
	placeCaret(&m.editor, text, offset)
}

func (m *Model) rows() []builderRow {
	return builderRows(m.service.Catalog(), m.service.Selection(), m.expanded)
}

func (m *Model) setTab(t Tab) tea.Cmd {
	if t == m.tab {
		return nil
	}
	m.tab = t
	m.showDetail = false
	if t != TabBuild && m.focus == focusEditor {
		m.focus = focusOptions
		m.editor.Blur()
	}

	switch t {
	case TabPreview:
		m.previewGen++
		m.preview.SetConfig(m.service.Simulation())
		return previewTickCmd(m.previewGen)
	case TabOutput:
		m.templates.Refresh()
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	body := max(8, height-8)
	leftW := min(40, width/3)
	rightW := max(20, width-leftW-4)
	if width < 90 {
		rightW = max(20, width-4)
	}

	m.editor.SetWidth(rightW - 4)
	m.editor.SetHeight(max(3, body/2-4))
	m.preview.SetSize(width-6, max(6, body-8))
	m.templates.SetSize(width-4, max(4, body-10))
	m.detail.Width = width - 4
	m.detail.Height = max(4, body-2)
	m.customModal.Resize(width, height)
	m.saveModal.Resize(width, height)

	if r, err := createGlamourRenderer(m.opts.GlamourStyle, max(20, width-8)); err == nil {
		m.glamourRenderer = r
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case restoreCaretMsg:
		if msg.gen == m.caretGen {
			m.restoreCaret()
		}
		return m, nil

	case dismissToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case previewTickMsg:
		if msg.gen != m.previewGen || m.tab != TabPreview {
			return m, nil
		}
		m.preview.SetConfig(m.service.Simulation())
		m.preview.Step(previewFrame)
		return m, previewTickCmd(m.previewGen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages such as cursor blinks go to the focused input
	var cmd tea.Cmd
	switch {
	case m.customModal.IsActive():
		cmd = m.customModal.Update(msg)
	case m.saveModal.IsActive():
		cmd = m.saveModal.Update(msg)
	case m.tab == TabBuild && m.focus == focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.customModal.IsActive() {
		cmd := m.customModal.Update(msg)
		if m.customModal.IsSubmitted() {
			text, categoryID := m.customModal.Consume()
			if _, ok := m.service.AddCustomOption(categoryID, text); ok {
				return m, tea.Batch(cmd, m.syncEditor())
			}
		}
		return m, cmd
	}

	if m.saveModal.IsActive() {
		cmd := m.saveModal.Update(msg)
		if m.saveModal.IsSubmitted() {
			name, _ := m.saveModal.Consume()
			if _, ok := m.service.SaveTemplate(name); ok {
				m.templates.Refresh()
				if storageCmd := m.storageToast(); storageCmd != nil {
					return m, tea.Batch(cmd, storageCmd)
				}
				return m, tea.Batch(cmd, m.setToast(toastSaved, "success"))
			}
		}
		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	// Focused inputs take every key except their exits
	if m.tab == TabBuild && m.focus == focusEditor {
		return m.handleEditorKey(msg)
	}
	if m.tab == TabOutput && m.templates.Querying() {
		return m, m.templates.Update(msg)
	}
	if m.tab == TabOutput && m.showDetail {
		if key.Matches(msg, m.keys.Back, m.keys.Details) {
			m.showDetail = false
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m, m.setTab((m.tab + 1) % Tab(len(tabLabels)))

	case key.Matches(msg, m.keys.PrevTab):
		return m, m.setTab((m.tab + Tab(len(tabLabels)) - 1) % Tab(len(tabLabels)))

	case key.Matches(msg, m.keys.Copy):
		return m, m.copy(false)

	case key.Matches(msg, m.keys.CopyJSON):
		return m, m.copy(true)

	case key.Matches(msg, m.keys.Save):
		return m, m.saveModal.Open("Save Template", "Template name...", "")

	case key.Matches(msg, m.keys.Clear):
		m.service.Clear()
		return m, tea.Batch(m.syncEditor(), m.setToast(toastCleared, "info"))

	case key.Matches(msg, m.keys.Faster):
		m.service.SetSpeed(m.service.Speed() + 0.1)
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.service.SetSpeed(m.service.Speed() - 0.1)
		return m, nil
	}

	switch m.tab {
	case TabBuild:
		return m.handleBuilderKey(msg)
	case TabOutput:
		return m.handleOutputKey(msg)
	}
	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back, m.keys.Focus) {
		m.focus = focusOptions
		m.editor.Blur()
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	// Every key moves the tracked cursor, not just edits
	offset := caretOffset(m.editor)
	if after := m.editor.Value(); after != before {
		m.service.EditText(after, offset)
	} else {
		m.service.SetCursor(offset)
	}
	return m, cmd
}

func (m Model) handleBuilderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	m.rowCursor = min(m.rowCursor, max(0, len(rows)-1))

	switch {
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusEditor
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.rowCursor > 0 {
			m.rowCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.rowCursor < len(rows)-1 {
			m.rowCursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[m.rowCursor]
		switch row.kind {
		case rowCategory:
			m.expanded[row.category.ID] = !m.expanded[row.category.ID]
		case rowCustom:
			singular := row.category.Singular()
			return m, m.customModal.Open(
				"Add Custom "+row.category.Title,
				fmt.Sprintf("Describe your custom %s...", singular),
				row.category.ID,
			)
		default:
			if m.service.ToggleOption(row.category.ID, row.option.ID) {
				return m, m.syncEditor()
			}
		}
	}
	return m, nil
}

func (m Model) handleOutputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.templates.StartQuery()
		return m, nil

	case msg.String() == "enter":
		t, ok := m.templates.Selected()
		if !ok || !m.service.LoadTemplate(t.ID) {
			return m, nil
		}
		tabCmd := m.setTab(TabBuild)
		return m, tea.Batch(tabCmd, m.syncEditor(), m.setToast(toastLoaded, "success"))

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.templates.Selected()
		if !ok || !m.service.DeleteTemplate(t.ID) {
			return m, nil
		}
		m.templates.Refresh()
		if cmd := m.storageToast(); cmd != nil {
			return m, cmd
		}
		return m, m.setToast(toastDeleted, "info")

	case key.Matches(msg, m.keys.Details):
		t, ok := m.templates.Selected()
		if !ok {
			return m, nil
		}
		md, err := m.service.TemplateMarkdown(t.ID)
		if err != nil {
			return m, m.errorToast(err)
		}
		formatted, err := m.glamourRenderer.Render(md)
		if err != nil {
			formatted = md
		}
		m.detail.SetContent(formatted)
		m.detail.GotoTop()
		m.showDetail = true
		return m, nil
	}

	return m, m.templates.Update(msg)
}

func (m *Model) copy(asJSON bool) tea.Cmd {
	copyFn := m.service.Copy
	if asJSON {
		copyFn = m.service.CopyJSON
	}
	text, err := copyFn()
	if err != nil {
		return m.errorToast(err)
	}
	return m.setToast(text, "success")
}

// View renders the current tab with header, toast and help
func (m Model) View() string {
	if m.customModal.IsActive() {
		return CenterModal(m.customModal.View(), m.width, m.height)
	}
	if m.saveModal.IsActive() {
		return CenterModal(m.saveModal.View(), m.width, m.height)
	}

	header := CreateMainHeader("VidGen Builder", m.opts.Version)
	tabs := CreateTabs(tabLabels, int(m.tab))

	var body string
	switch m.tab {
	case TabBuild:
		body = m.renderBuildView()
	case TabPreview:
		body = m.renderPreviewView()
	case TabOutput:
		body = m.renderOutputView()
	}

	parts := []string{header, tabs, "", body}
	if m.toast != "" {
		parts = append(parts, "", StyleToast.Render(CreateStatus(m.toast, m.toastType)))
	}

	m.help.ShowAll = m.showHelp
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderBuildView() string {
	sel := m.service.Selection()
	rows := m.rows()
	cursor := min(m.rowCursor, max(0, len(rows)-1))
	if m.focus == focusEditor {
		cursor = -1
	}

	body := max(8, m.height-8)
	options := renderBuilder(rows, sel, m.expanded, cursor, body-2)

	editorStyle := StyleCard
	if m.focus == focusEditor {
		editorStyle = StyleCardFocus
	}
	count := StyleMetadata.Render(fmt.Sprintf("%d characters", len([]rune(m.service.Text()))))

	rightW := max(20, m.width-min(40, m.width/3)-4)
	if m.width < 90 {
		rightW = max(20, m.width-4)
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		StyleSubtitle.Render("Selected"),
		selectedChips(m.service.Catalog(), sel, rightW),
		"",
		StyleSubtitle.Render("Prompt"),
		editorStyle.Render(m.editor.View()),
		count,
	)

	if m.width < 90 {
		return lipgloss.JoinVertical(lipgloss.Left, options, "", right)
	}
	left := lipgloss.NewStyle().Width(min(40, m.width/3)).Render(options)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m Model) renderPreviewView() string {
	speed := StyleMetadata.Render(fmt.Sprintf("Speed %.1fx (+/-)", m.service.Speed()))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.preview.View(),
		speed,
		"",
		promptCard(m.service.Text(), m.width),
	)
}

func (m Model) renderOutputView() string {
	if m.showDetail {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.detail.View(),
			CreateGuaranteedHelp("Esc: back • ↑/↓: scroll", m.width),
		)
	}

	actions := strings.Join([]string{
		"c copy",
		"y copy JSON",
		"s save template",
		"x clear all",
	}, " • ")

	// Loading a template rebuilds the text in category order
	status := StyleMetadata.Render("Same as the prompt rebuilt from selections")
	if m.service.Text() != m.service.BuiltPrompt() {
		status = StyleMetadata.Render("Differs from the prompt rebuilt from selections")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		promptCard(m.service.Text(), m.width),
		status,
		StyleTextDim.Render(actions),
		"",
		StyleSubtitle.Render("Saved Templates"),
		m.templates.View(),
		CreateGuaranteedHelp("Enter: load • v: details • d: delete • /: search", m.width),
	)
}
