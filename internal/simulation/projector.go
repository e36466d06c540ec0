// Package simulation projects a selection into the parameters that drive
// the stylized preview animation. Projection is pure and deterministic.
package simulation

import (
	"math"
	"time"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

// Speed bounds enforced by callers before projecting
const (
	MinSpeed     = 0.1
	MaxSpeed     = 3.0
	DefaultSpeed = 1.0
)

// Base durations at speed 1.0
const (
	BaseSlowDuration        = 8 * time.Second
	BaseFastDuration        = 3 * time.Second
	BaseSubjectFastDuration = 600 * time.Millisecond
	BaseSubjectCalmDuration = 2 * time.Second
)

// Camera motions
const (
	CameraNone     = "none"
	CameraZoomIn   = "zoom-in"
	CameraZoomOut  = "zoom-out"
	CameraPanLeft  = "pan-left"
	CameraPanRight = "pan-right"
)

// Container motions
const (
	ContainerStill = "none"
	ContainerShake = "shake"
)

// Defaults for unmapped or absent selections
const (
	OverlayNone       = "overlay-none"
	BackgroundDefault = "bg-default"
	IconDefault       = "box"
	MotionNone        = ""
)

// Config is the derived, ephemeral preview parameter set
type Config struct {
	CameraMotion    string
	ContainerMotion string
	LightingOverlay string
	Background      string
	SubjectIcon     string
	SubjectMotion   string
	SubjectDuration time.Duration
	Cinematic       bool
	Anime           bool
	SlowDuration    time.Duration
	FastDuration    time.Duration
}

type subjectLook struct {
	icon   string
	motion string
	fast   bool
}

var cameraMotions = map[string]string{
	"zoom_in":   CameraZoomIn,
	"zoom_out":  CameraZoomOut,
	"pan_left":  CameraPanLeft,
	"pan_right": CameraPanRight,
}

const handheldID = "handheld"

var lightingOverlays = map[string]string{
	"golden_hour": "overlay-golden",
	"blue_hour":   "overlay-blue",
	"studio":      "overlay-studio",
	"natural":     "overlay-natural",
	"neon":        "overlay-neon",
}

var backgrounds = map[string]string{
	"forest": "bg-forest",
	"city":   "bg-city",
	"space":  "bg-space",
	"beach":  "bg-beach",
	"indoor": "bg-indoor",
}

var subjects = map[string]subjectLook{
	"walking":  {icon: "walker", motion: "walk"},
	"running":  {icon: "runner", motion: "run", fast: true},
	"dancing":  {icon: "dancer", motion: "bounce", fast: true},
	"talking":  {icon: "speaker", motion: "pulse"},
	"eating":   {icon: "diner", motion: "nibble"},
	"sleeping": {icon: "sleeper", motion: "breathe"},
}

// Project maps a selection and speed scalar to a preview configuration.
// speed must be strictly positive; callers clamp it with ClampSpeed.
func Project(sel models.Selection, speed float64) Config {
	cfg := Config{
		CameraMotion:    CameraNone,
		ContainerMotion: ContainerStill,
		LightingOverlay: OverlayNone,
		Background:      BackgroundDefault,
		SubjectIcon:     IconDefault,
		SubjectMotion:   MotionNone,
		SlowDuration:    scale(BaseSlowDuration, speed),
		FastDuration:    scale(BaseFastDuration, speed),
	}

	// The earliest mapped camera option wins; handheld layers on top
	for _, opt := range sel[catalog.Camera] {
		if motion, ok := cameraMotions[opt.ID]; ok && cfg.CameraMotion == CameraNone {
			cfg.CameraMotion = motion
		}
		if opt.ID == handheldID {
			cfg.ContainerMotion = ContainerShake
		}
	}

	if opt, ok := sel.First(catalog.Lighting); ok {
		if overlay, ok := lightingOverlays[opt.ID]; ok {
			cfg.LightingOverlay = overlay
		}
	}

	if opt, ok := sel.First(catalog.Environment); ok {
		if bg, ok := backgrounds[opt.ID]; ok {
			cfg.Background = bg
		}
	}

	subjectBase := BaseSubjectCalmDuration
	if opt, ok := sel.First(catalog.Subject); ok {
		if look, ok := subjects[opt.ID]; ok {
			cfg.SubjectIcon = look.icon
			cfg.SubjectMotion = look.motion
			if look.fast {
				subjectBase = BaseSubjectFastDuration
			}
		}
	}
	cfg.SubjectDuration = scale(subjectBase, speed)

	if opt, ok := sel.First(catalog.Style); ok {
		cfg.Cinematic = opt.ID == "cinematic"
		cfg.Anime = opt.ID == "anime"
	}

	return cfg
}

// ClampSpeed bounds a speed scalar to [MinSpeed, MaxSpeed] and rounds it
// to one decimal so repeated 0.1 steps land on exact values.
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) || speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return math.Round(speed*10) / 10
}

func scale(base time.Duration, speed float64) time.Duration {
	return time.Duration(float64(base) / speed)
}
