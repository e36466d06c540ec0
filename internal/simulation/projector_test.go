package simulation

import (
	"testing"
	"time"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

func sel(pairs ...string) models.Selection {
	c := catalog.Default()
	s := c.EmptySelection()
	for i := 0; i+1 < len(pairs); i += 2 {
		opt, ok := c.Option(pairs[i], pairs[i+1])
		if !ok {
			opt = models.Option{ID: pairs[i+1], Value: pairs[i+1]}
		}
		s[pairs[i]] = append(s[pairs[i]], opt)
	}
	return s
}

func TestProjectDefaults(t *testing.T) {
	cfg := Project(catalog.Default().EmptySelection(), 1.0)

	if cfg.CameraMotion != CameraNone || cfg.ContainerMotion != ContainerStill {
		t.Errorf("expected no motion, got %q/%q", cfg.CameraMotion, cfg.ContainerMotion)
	}
	if cfg.LightingOverlay != OverlayNone {
		t.Errorf("expected neutral overlay, got %q", cfg.LightingOverlay)
	}
	if cfg.Background != BackgroundDefault {
		t.Errorf("expected default background, got %q", cfg.Background)
	}
	if cfg.SubjectIcon != IconDefault || cfg.SubjectMotion != MotionNone {
		t.Errorf("expected default subject, got %q/%q", cfg.SubjectIcon, cfg.SubjectMotion)
	}
	if cfg.Cinematic || cfg.Anime {
		t.Error("style flags should be false")
	}
	if cfg.SlowDuration != 8*time.Second || cfg.FastDuration != 3*time.Second {
		t.Errorf("unexpected base durations %v/%v", cfg.SlowDuration, cfg.FastDuration)
	}
	if cfg.SubjectDuration != 2*time.Second {
		t.Errorf("expected calm subject duration, got %v", cfg.SubjectDuration)
	}

	if nilCfg := Project(nil, 1.0); nilCfg != cfg {
		t.Error("nil selection should project like an empty one")
	}
}

func TestProjectCamera(t *testing.T) {
	tests := []struct {
		name      string
		selection models.Selection
		motion    string
		container string
	}{
		{"zoom in", sel(catalog.Camera, "zoom_in"), CameraZoomIn, ContainerStill},
		{"zoom out", sel(catalog.Camera, "zoom_out"), CameraZoomOut, ContainerStill},
		{"pan left", sel(catalog.Camera, "pan_left"), CameraPanLeft, ContainerStill},
		{"pan right", sel(catalog.Camera, "pan_right"), CameraPanRight, ContainerStill},
		{"static", sel(catalog.Camera, "static"), CameraNone, ContainerStill},
		{"handheld only", sel(catalog.Camera, "handheld"), CameraNone, ContainerShake},
		{"handheld with pan", sel(catalog.Camera, "handheld", catalog.Camera, "pan_right"), CameraPanRight, ContainerShake},
		{"first mapped wins", sel(catalog.Camera, "static", catalog.Camera, "zoom_out", catalog.Camera, "zoom_in"), CameraZoomOut, ContainerStill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Project(tt.selection, 1.0)
			if cfg.CameraMotion != tt.motion {
				t.Errorf("expected camera %q, got %q", tt.motion, cfg.CameraMotion)
			}
			if cfg.ContainerMotion != tt.container {
				t.Errorf("expected container %q, got %q", tt.container, cfg.ContainerMotion)
			}
		})
	}
}

func TestProjectFirstOptionOnly(t *testing.T) {
	cfg := Project(sel(
		catalog.Lighting, "neon",
		catalog.Lighting, "golden_hour",
		catalog.Environment, "space",
		catalog.Subject, "sleeping",
		catalog.Subject, "running",
	), 1.0)

	if cfg.LightingOverlay != "overlay-neon" {
		t.Errorf("expected first lighting option, got %q", cfg.LightingOverlay)
	}
	if cfg.Background != "bg-space" {
		t.Errorf("expected space background, got %q", cfg.Background)
	}
	if cfg.SubjectIcon != "sleeper" || cfg.SubjectMotion != "breathe" {
		t.Errorf("expected sleeper/breathe, got %q/%q", cfg.SubjectIcon, cfg.SubjectMotion)
	}
	if cfg.SubjectDuration != 2*time.Second {
		t.Errorf("sleeping is calm, got %v", cfg.SubjectDuration)
	}
}

func TestProjectUnmappedFallsBack(t *testing.T) {
	cfg := Project(sel(
		catalog.Lighting, "custom_1",
		catalog.Environment, "custom_2",
		catalog.Subject, "custom_3",
	), 1.0)

	if cfg.LightingOverlay != OverlayNone || cfg.Background != BackgroundDefault || cfg.SubjectIcon != IconDefault {
		t.Errorf("unmapped ids should fall back to defaults, got %+v", cfg)
	}
}

func TestProjectStyleFlags(t *testing.T) {
	if cfg := Project(sel(catalog.Style, "cinematic"), 1.0); !cfg.Cinematic || cfg.Anime {
		t.Errorf("cinematic flags wrong: %+v", cfg)
	}
	if cfg := Project(sel(catalog.Style, "anime"), 1.0); cfg.Cinematic || !cfg.Anime {
		t.Errorf("anime flags wrong: %+v", cfg)
	}
	if cfg := Project(sel(catalog.Style, "cyberpunk"), 1.0); cfg.Cinematic || cfg.Anime {
		t.Errorf("other styles should clear both flags: %+v", cfg)
	}
}

func TestProjectSpeedScaling(t *testing.T) {
	s := sel(catalog.Subject, "running", catalog.Camera, "zoom_in")
	normal := Project(s, 1.0)
	double := Project(s, 2.0)

	if double.SlowDuration*2 != normal.SlowDuration {
		t.Errorf("slow duration should halve: %v vs %v", double.SlowDuration, normal.SlowDuration)
	}
	if double.FastDuration*2 != normal.FastDuration {
		t.Errorf("fast duration should halve: %v vs %v", double.FastDuration, normal.FastDuration)
	}
	if normal.SubjectDuration != 600*time.Millisecond {
		t.Errorf("running should use the fast subject base, got %v", normal.SubjectDuration)
	}
	if double.SubjectDuration != 300*time.Millisecond {
		t.Errorf("expected 300ms at double speed, got %v", double.SubjectDuration)
	}

	slow := Project(s, 0.5)
	if slow.SlowDuration != 16*time.Second {
		t.Errorf("expected 16s at half speed, got %v", slow.SlowDuration)
	}
}

func TestProjectDeterministic(t *testing.T) {
	s := sel(catalog.Camera, "handheld", catalog.Lighting, "studio", catalog.Style, "anime")
	if Project(s, 1.7) != Project(s, 1.7) {
		t.Error("identical inputs must yield identical configs")
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.0, 1.0},
		{0, MinSpeed},
		{-2, MinSpeed},
		{0.05, MinSpeed},
		{3.0, 3.0},
		{9, MaxSpeed},
		{1.2000000000000002, 1.2},
		{0.30000000000000004, 0.3},
		{1.26, 1.3},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.want {
			t.Errorf("ClampSpeed(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMemoMatchesProject(t *testing.T) {
	var m Memo
	s := sel(catalog.Camera, "zoom_in", catalog.Environment, "forest")

	first := m.Project(s, 1.0)
	second := m.Project(s.Clone(), 1.0)
	if first != Project(s, 1.0) || second != first {
		t.Fatal("memoized projection must equal Project")
	}
	if hits, misses := m.Stats(); hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	faster := m.Project(s, 2.0)
	if faster != Project(s, 2.0) {
		t.Error("speed change must recompute")
	}

	changed := sel(catalog.Camera, "pan_left", catalog.Environment, "forest")
	if got := m.Project(changed, 2.0); got.CameraMotion != CameraPanLeft {
		t.Errorf("selection change must recompute, got %q", got.CameraMotion)
	}
}

func TestGlyphs(t *testing.T) {
	cfg := Project(sel("subject", "dancing", "environment", "space"), 1)
	if Icon(cfg.SubjectIcon) != `\o/` {
		t.Errorf("unexpected dancer glyph %q", Icon(cfg.SubjectIcon))
	}
	if BackgroundGlyph(cfg.Background) != '*' {
		t.Errorf("unexpected space glyph %q", BackgroundGlyph(cfg.Background))
	}
	if Icon("unknown") != Icon(IconDefault) || BackgroundGlyph("bg-mars") != '.' {
		t.Error("unknown selectors should fall back to defaults")
	}
}
