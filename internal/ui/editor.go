package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
)

// newEditor creates the prompt textarea
func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Your prompt will appear here as you select options..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = "│ "
	ta.SetWidth(60)
	ta.SetHeight(6)
	return ta
}

// caretOffset returns the textarea caret as a rune offset into its value
func caretOffset(ta textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	row := ta.Line()
	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}
	info := ta.LineInfo()
	return offset + info.StartColumn + info.ColumnOffset
}

// placeCaret replaces the textarea value and moves the caret to a rune offset
func placeCaret(ta *textarea.Model, text string, offset int) {
	ta.SetValue(text)

	lines := strings.Split(text, "\n")
	row, col := len(lines)-1, 0
	remaining := max(0, offset)
	for i, line := range lines {
		n := len([]rune(line))
		if remaining <= n {
			row, col = i, remaining
			break
		}
		remaining -= n + 1
		if i == len(lines)-1 {
			col = n
		}
	}

	// SetValue leaves the caret at the end; walk up to the target row.
	// Soft-wrapped rows make CursorUp move less than a line, so bound the
	// walk by the number of visual rows rather than logical ones.
	for steps := len([]rune(text)) + len(lines); ta.Line() > row && steps > 0; steps-- {
		ta.CursorUp()
	}
	ta.SetCursor(col)
}
