package catalog

import "github.com/dpshade/vidgen/internal/models"

var defaultCategories = []models.Category{
	{
		ID:            Camera,
		Title:         "Camera Motions",
		Description:   "Define how the camera moves",
		AllowMultiple: true,
		Options: []models.Option{
			{ID: "zoom_in", Label: "Zoom In", Value: "camera zoom in"},
			{ID: "zoom_out", Label: "Zoom Out", Value: "camera zoom out"},
			{ID: "pan_left", Label: "Pan Left", Value: "camera pan left"},
			{ID: "pan_right", Label: "Pan Right", Value: "camera pan right"},
			{ID: "static", Label: "Static", Value: "static camera"},
			{ID: "handheld", Label: "Handheld", Value: "handheld camera movement"},
		},
	},
	{
		ID:            Subject,
		Title:         "Subject Actions",
		Description:   "What is the main subject doing?",
		AllowMultiple: true,
		Options: []models.Option{
			{ID: "walking", Label: "Walking", Value: "subject walking forward"},
			{ID: "running", Label: "Running", Value: "subject running fast"},
			{ID: "dancing", Label: "Dancing", Value: "dancing rhythmically"},
			{ID: "talking", Label: "Talking", Value: "talking expressively"},
			{ID: "eating", Label: "Eating", Value: "eating"},
			{ID: "sleeping", Label: "Sleeping", Value: "sleeping peacefully"},
		},
	},
	{
		ID:            Style,
		Title:         "Art Styles",
		Description:   "Visual style of the video",
		AllowMultiple: false,
		Options: []models.Option{
			{ID: "cinematic", Label: "Cinematic", Value: "cinematic lighting, movie style"},
			{ID: "anime", Label: "Anime", Value: "anime style, studio ghibli"},
			{ID: "photorealistic", Label: "Photorealistic", Value: "8k photorealistic, unreal engine 5"},
			{ID: "oil_painting", Label: "Oil Painting", Value: "oil painting style, textured"},
			{ID: "cyberpunk", Label: "Cyberpunk", Value: "cyberpunk 2077 style, neon lights"},
		},
	},
	{
		ID:            Lighting,
		Title:         "Lighting",
		Description:   "Atmosphere and lighting conditions",
		AllowMultiple: true,
		Options: []models.Option{
			{ID: "golden_hour", Label: "Golden Hour", Value: "golden hour lighting"},
			{ID: "blue_hour", Label: "Blue Hour", Value: "blue hour, cold tones"},
			{ID: "studio", Label: "Studio", Value: "professional studio lighting"},
			{ID: "natural", Label: "Natural", Value: "soft natural light"},
			{ID: "neon", Label: "Neon", Value: "bright neon lighting"},
		},
	},
	{
		ID:            Environment,
		Title:         "Environment",
		Description:   "Where does the scene take place?",
		AllowMultiple: false,
		Options: []models.Option{
			{ID: "forest", Label: "Forest", Value: "in a dense forest"},
			{ID: "city", Label: "City Street", Value: "on a busy city street"},
			{ID: "space", Label: "Outer Space", Value: "in deep outer space"},
			{ID: "beach", Label: "Beach", Value: "on a sunny tropical beach"},
			{ID: "indoor", Label: "Indoor Room", Value: "inside a cozy room"},
		},
	},
	{
		ID:            Quality,
		Title:         "Quality",
		Description:   "Technical quality parameters",
		AllowMultiple: true,
		Options: []models.Option{
			{ID: "4k", Label: "4K", Value: "4k resolution"},
			{ID: "8k", Label: "8K", Value: "8k resolution"},
			{ID: "high_detail", Label: "High Detail", Value: "highly detailed"},
			{ID: "masterpiece", Label: "Masterpiece", Value: "masterpiece"},
		},
	},
}

// Default returns the built-in taxonomy
func Default() *Catalog {
	c, err := New(defaultCategories)
	if err != nil {
		// The built-in table is static; a failure here is a programming error
		panic(err)
	}
	return c
}
