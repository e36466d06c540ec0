package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/dpshade/vidgen/internal/simulation"
)

const previewFPS = 30

// previewFrame is the wall-clock length of one animation frame
var previewFrame = time.Second / previewFPS

// Canvas layers, back to front
const (
	layerBackground = iota
	layerStage
	layerSubject
	layerBars
)

type cell struct {
	r     rune
	layer int
}

// Preview animates a simulation.Config as an ASCII scene. Camera motion
// drives spring-smoothed zoom and pan; subject and handheld motion are
// periodic offsets derived from elapsed time.
type Preview struct {
	cfg     simulation.Config
	spring  harmonica.Spring
	zoom    float64
	zoomVel float64
	pan     float64
	panVel  float64
	elapsed time.Duration
	frame   int
	width   int
	height  int
}

// NewPreview creates a preview at rest
func NewPreview() *Preview {
	return &Preview{
		spring: harmonica.NewSpring(harmonica.FPS(previewFPS), 6.0, 0.7),
		zoom:   1,
		width:  60,
		height: 14,
	}
}

// SetConfig swaps the projected configuration, restarting the loop when
// it changes
func (p *Preview) SetConfig(cfg simulation.Config) {
	if cfg == p.cfg {
		return
	}
	p.cfg = cfg
	p.elapsed = 0
}

// SetSize sets the canvas size in cells
func (p *Preview) SetSize(width, height int) {
	p.width = max(16, width)
	p.height = max(6, height)
}

// Step advances the animation by dt
func (p *Preview) Step(dt time.Duration) {
	p.elapsed += dt
	p.frame++
	zoomTarget, panTarget := p.cameraTargets()
	p.zoom, p.zoomVel = p.spring.Update(p.zoom, p.zoomVel, zoomTarget)
	p.pan, p.panVel = p.spring.Update(p.pan, p.panVel, panTarget)
}

// progress returns the position within a looping period in [0, 1)
func progress(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(elapsed%period) / float64(period)
}

// cameraTargets returns where zoom and pan should be at this point of the
// slow loop
func (p *Preview) cameraTargets() (zoom, pan float64) {
	t := progress(p.elapsed, p.cfg.SlowDuration)
	switch p.cfg.CameraMotion {
	case simulation.CameraZoomIn:
		return 1 + 0.5*t, 0
	case simulation.CameraZoomOut:
		return 1.5 - 0.5*t, 0
	case simulation.CameraPanLeft:
		return 1, -t
	case simulation.CameraPanRight:
		return 1, t
	default:
		return 1, 0
	}
}

// subjectOffset returns the subject's displacement and visibility
func (p *Preview) subjectOffset() (dx, dy int, visible bool) {
	phase := progress(p.elapsed, p.cfg.SubjectDuration)
	wave := math.Sin(2 * math.Pi * phase)

	switch p.cfg.SubjectMotion {
	case "walk":
		return int(math.Round(2 * wave)), 0, true
	case "run":
		return int(math.Round(3 * wave)), 0, true
	case "bounce":
		return 0, -int(math.Round(math.Abs(wave))), true
	case "pulse":
		return 0, 0, phase < 0.7
	case "nibble":
		if phase < 0.5 {
			return 0, 0, true
		}
		return 1, 0, true
	case "breathe":
		if phase < 0.5 {
			return 0, 0, true
		}
		return 0, -1, true
	default:
		return 0, 0, true
	}
}

// shakeOffset returns the handheld jitter for the current frame
func (p *Preview) shakeOffset() (dx, dy int) {
	if p.cfg.ContainerMotion != simulation.ContainerShake {
		return 0, 0
	}
	f := float64(p.frame)
	return int(math.Round(math.Sin(f * 1.7))), int(math.Round(0.6 * math.Cos(f*2.3)))
}

func (p *Preview) canvas() [][]cell {
	w, h := p.width, p.height
	grid := make([][]cell, h)

	glyph := simulation.BackgroundGlyph(p.cfg.Background)
	panCells := int(math.Round(p.pan * float64(w) / 3))
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', layer: layerBackground}
			if ((x+panCells)%6+6)%6 == 0 && y%2 == 0 || ((x+panCells+3)%6+6)%6 == 0 && y%2 == 1 {
				grid[y][x].r = glyph
			}
		}
	}

	// Stage frame, scaled by zoom and shaken by handheld motion
	sx, sy := p.shakeOffset()
	stageW := int(math.Round(float64(w) / 3 * p.zoom))
	stageH := int(math.Round(float64(h) / 2 * p.zoom))
	cx, cy := w/2+sx, h/2+sy
	left, top := cx-stageW/2, cy-stageH/2
	right, bottom := left+stageW-1, top+stageH-1

	corner := '+'
	if p.cfg.Anime {
		corner = '*'
	}
	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			if y < 0 || y >= h || x < 0 || x >= w {
				continue
			}
			onX := x == left || x == right
			onY := y == top || y == bottom
			switch {
			case onX && onY:
				grid[y][x] = cell{r: corner, layer: layerStage}
			case onY:
				grid[y][x] = cell{r: '-', layer: layerStage}
			case onX:
				grid[y][x] = cell{r: '|', layer: layerStage}
			default:
				grid[y][x] = cell{r: ' ', layer: layerStage}
			}
		}
	}

	// Subject
	dx, dy, visible := p.subjectOffset()
	if visible {
		icon := simulation.Icon(p.cfg.SubjectIcon)
		y := cy + dy
		x0 := cx + dx - len(icon)/2
		for i, r := range icon {
			x := x0 + i
			if y >= 0 && y < h && x >= 0 && x < w {
				grid[y][x] = cell{r: r, layer: layerSubject}
			}
		}
	}

	// Letterbox bars for the cinematic style
	if p.cfg.Cinematic && h > 4 {
		for _, y := range []int{0, h - 1} {
			for x := range grid[y] {
				grid[y][x] = cell{r: '█', layer: layerBars}
			}
		}
	}
	return grid
}

// overlayColors tint the background per lighting overlay
var overlayColors = map[string]lipgloss.Color{
	"overlay-golden":  lipgloss.Color("214"),
	"overlay-blue":    lipgloss.Color("33"),
	"overlay-studio":  lipgloss.Color("255"),
	"overlay-natural": lipgloss.Color("114"),
	"overlay-neon":    lipgloss.Color("201"),
}

func (p *Preview) layerStyle(layer int) lipgloss.Style {
	switch layer {
	case layerStage:
		return lipgloss.NewStyle().Foreground(ColorBorder)
	case layerSubject:
		if p.cfg.Anime {
			return lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	case layerBars:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	default:
		if c, ok := overlayColors[p.cfg.LightingOverlay]; ok {
			return lipgloss.NewStyle().Foreground(c)
		}
		return lipgloss.NewStyle().Foreground(ColorTextDim)
	}
}

// Lines returns the unstyled scene, one string per row
func (p *Preview) Lines() []string {
	grid := p.canvas()
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		lines[y] = b.String()
	}
	return lines
}

// View renders the styled scene with its caption
func (p *Preview) View() string {
	grid := p.canvas()
	rows := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].layer == row[start].layer {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteRune(c.r)
			}
			b.WriteString(p.layerStyle(row[start].layer).Render(run.String()))
			start = x
		}
		rows[y] = b.String()
	}

	scene := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, scene, StyleMetadata.Render(p.Caption()))
}

// Caption summarizes the active configuration
func (p *Preview) Caption() string {
	parts := []string{"Simulation Mode", "camera " + p.cfg.CameraMotion}
	if p.cfg.ContainerMotion == simulation.ContainerShake {
		parts = append(parts, "handheld")
	}
	if p.cfg.SubjectMotion != simulation.MotionNone {
		parts = append(parts, fmt.Sprintf("%s %s every %s", p.cfg.SubjectIcon, p.cfg.SubjectMotion, p.cfg.SubjectDuration.Round(time.Millisecond)))
	}
	parts = append(parts, p.cfg.LightingOverlay, p.cfg.Background)
	return strings.Join(parts, " · ")
}
