package simulation

// Glyphs used by terminal renderings of a Config. Every glyph is ASCII so
// its cell width equals its length.

var iconGlyphs = map[string]string{
	"walker":    `o/`,
	"runner":    `o>>`,
	"dancer":    `\o/`,
	"speaker":   `o<)`,
	"diner":     `o-@`,
	"sleeper":   `o zZ`,
	IconDefault: `[#]`,
}

var backgroundGlyphs = map[string]rune{
	"bg-forest":       '^',
	"bg-city":         '#',
	"bg-space":        '*',
	"bg-beach":        '~',
	"bg-indoor":       '=',
	BackgroundDefault: '.',
}

// Icon returns the glyph for a subject icon selector
func Icon(selector string) string {
	if g, ok := iconGlyphs[selector]; ok {
		return g
	}
	return iconGlyphs[IconDefault]
}

// BackgroundGlyph returns the fill rune for a background selector
func BackgroundGlyph(selector string) rune {
	if g, ok := backgroundGlyphs[selector]; ok {
		return g
	}
	return backgroundGlyphs[BackgroundDefault]
}
