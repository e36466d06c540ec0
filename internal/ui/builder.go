package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

type rowKind int

const (
	rowCategory rowKind = iota
	rowOption
	rowCustom
)

// builderRow is one line of the category accordion
type builderRow struct {
	kind     rowKind
	category models.Category
	option   models.Option
}

// builderRows flattens the accordion. Expanded categories list their
// catalog options, any selected custom options, then an add-custom row.
func builderRows(cat *catalog.Catalog, sel models.Selection, expanded map[string]bool) []builderRow {
	var rows []builderRow
	for _, c := range cat.Categories() {
		rows = append(rows, builderRow{kind: rowCategory, category: c})
		if !expanded[c.ID] {
			continue
		}
		for _, opt := range c.Options {
			rows = append(rows, builderRow{kind: rowOption, category: c, option: opt})
		}
		for _, opt := range sel[c.ID] {
			if opt.IsCustom {
				rows = append(rows, builderRow{kind: rowOption, category: c, option: opt})
			}
		}
		rows = append(rows, builderRow{kind: rowCustom, category: c})
	}
	return rows
}

// renderBuilderRow draws a row; cursor marks the highlighted row
func renderBuilderRow(row builderRow, sel models.Selection, expanded, cursor bool) string {
	pointer := "  "
	if cursor {
		pointer = StyleFocused.Render("> ")
	}

	switch row.kind {
	case rowCategory:
		arrow := "▸"
		if expanded {
			arrow = "▾"
		}
		title := fmt.Sprintf("%s %s", arrow, row.category.Title)
		if n := len(sel[row.category.ID]); n > 0 {
			title += StyleMetadata.Render(fmt.Sprintf(" (%d)", n))
		}
		return pointer + StyleSubtitle.Render(title)

	case rowCustom:
		return pointer + "    " + StyleTextDim.Render("+ custom "+row.category.Singular())

	default:
		mark := "[ ]"
		style := StyleUnselected
		if sel.Has(row.category.ID, row.option.ID) {
			mark = "[x]"
			style = StyleSelected
		}
		label := row.option.Title()
		if row.option.IsCustom {
			label += StyleMetadata.Render(" (custom)")
		}
		return pointer + "    " + style.Render(mark+" "+label)
	}
}

// renderBuilder draws the visible window of the accordion around cursor
func renderBuilder(rows []builderRow, sel models.Selection, expanded map[string]bool, cursor, height int) string {
	if height <= 0 {
		height = len(rows)
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(len(rows), start+height)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := rows[i]
		lines = append(lines, renderBuilderRow(row, sel, expanded[row.category.ID], i == cursor))
	}
	return strings.Join(lines, "\n")
}

// selectedChips renders every selected option as a chip, in catalog order
func selectedChips(cat *catalog.Catalog, sel models.Selection, width int) string {
	var labels []string
	var custom []bool
	for _, id := range cat.IDs() {
		for _, opt := range sel[id] {
			labels = append(labels, opt.Title())
			custom = append(custom, opt.IsCustom)
		}
	}
	if len(labels) == 0 {
		return StyleTextDim.Render("No options selected")
	}
	return CreateChips(labels, custom, width)
}

// promptCard frames the prompt text with its character count
func promptCard(text string, width int) string {
	body := text
	if strings.TrimSpace(body) == "" {
		body = StyleTextDim.Render("Your prompt will appear here as you select options...")
	}
	count := StyleMetadata.Render(fmt.Sprintf("%d characters", len([]rune(text))))
	return StyleCard.Width(max(20, width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, body, "", count))
}
