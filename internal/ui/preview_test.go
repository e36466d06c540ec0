package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/dpshade/vidgen/internal/simulation"
)

func TestProgress(t *testing.T) {
	if got := progress(0, time.Second); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := progress(1500*time.Millisecond, time.Second); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	if got := progress(time.Second, 0); got != 0 {
		t.Errorf("Expected 0 for an empty period, got %v", got)
	}
}

func TestPreviewCanvasSize(t *testing.T) {
	p := NewPreview()
	p.SetSize(40, 10)
	p.SetConfig(simulation.Project(nil, 1))

	lines := p.Lines()
	if len(lines) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 40 {
			t.Errorf("Row %d: expected 40 cells, got %d", i, n)
		}
	}
}

func TestPreviewLayers(t *testing.T) {
	p := NewPreview()
	p.SetSize(40, 10)
	p.SetConfig(simulation.Config{
		CameraMotion:    simulation.CameraNone,
		ContainerMotion: simulation.ContainerStill,
		Background:      "bg-space",
		SubjectIcon:     "dancer",
		SubjectMotion:   simulation.MotionNone,
		Cinematic:       true,
		SlowDuration:    8 * time.Second,
		SubjectDuration: time.Second,
	})

	lines := p.Lines()
	if lines[0] != strings.Repeat("█", 40) || lines[9] != strings.Repeat("█", 40) {
		t.Errorf("Expected letterbox bars on the first and last rows")
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, `\o/`) {
		t.Errorf("Expected the dancer glyph in the scene")
	}
	if !strings.Contains(joined, "*") {
		t.Errorf("Expected the space background glyph")
	}
}

func TestPreviewZoomFollowsCamera(t *testing.T) {
	p := NewPreview()
	p.SetConfig(simulation.Config{
		CameraMotion:    simulation.CameraZoomIn,
		SlowDuration:    time.Second,
		SubjectDuration: time.Second,
	})

	// Run to just before the loop restarts, where the target is near 1.5
	for i := 0; i < previewFPS-1; i++ {
		p.Step(previewFrame)
	}
	if p.zoom <= 1.1 {
		t.Errorf("Expected zoom to grow toward the target, got %v", p.zoom)
	}
}

func TestPreviewConfigChangeRestartsLoop(t *testing.T) {
	p := NewPreview()
	cfg := simulation.Project(nil, 1)
	p.SetConfig(cfg)
	p.Step(time.Second)

	p.SetConfig(cfg)
	if p.elapsed != time.Second {
		t.Errorf("Expected same config to keep elapsed time, got %v", p.elapsed)
	}

	cfg.Cinematic = true
	p.SetConfig(cfg)
	if p.elapsed != 0 {
		t.Errorf("Expected changed config to restart, got %v", p.elapsed)
	}
}

func TestPreviewCaption(t *testing.T) {
	p := NewPreview()
	p.SetConfig(simulation.Project(nil, 1))
	if !strings.HasPrefix(p.Caption(), "Simulation Mode") {
		t.Errorf("Unexpected caption %q", p.Caption())
	}
}
