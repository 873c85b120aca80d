// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800

	// Globe presentation.
	GlobeScale       = 300.0 // pixels per unit of sphere radius
	ZoomMin          = 180.0
	ZoomMax          = 520.0
	ZoomStep         = 30.0
	LimbCullDepth    = 0.12 // regions closer to the limb than this are hidden
	RegionLiftFactor = 1.01 // hexes float just off the sphere surface

	// Camera behaviour.
	RotateSpeed     = 1.6  // radians per second, keyboard rotation
	DragSensitivity = 0.01 // radians per pixel of mouse drag
	TweenSpeed      = 4.0  // tween rate toward a selected region
	PitchLimit      = 1.45 // just short of the poles
	SettleEpsilon   = 0.002

	// Input.
	ClickDebounceTime = 250 // milliseconds
	DragThreshold     = 4   // pixels before a press counts as a drag

	// Star field.
	StarCount     = 220
	StarMaxRadius = 1.6

	// Info panel.
	PanelHeight     = 170
	PanelMargin     = 5
	PanelAnimSpeed  = 14.0
	LineHeight      = 20
	TitleFontSize   = 18
	RegularFontSize = 14

	MaxDeltaTime = 0.06
)

var (
	BackgroundColor  = color.RGBA{8, 10, 18, 255}
	OceanColor       = color.RGBA{18, 38, 60, 255}
	OceanRimColor    = color.RGBA{40, 80, 110, 255}
	StarColor        = color.RGBA{210, 215, 230, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{160, 170, 185, 255}
	PanelBgColor     = color.RGBA{25, 35, 45, 230}
	PanelBorderColor = color.RGBA{70, 130, 180, 255}
	HighlightColor   = color.RGBA{255, 236, 120, 255}
	StrokeWidth      = 1.5

	// Per-biome label colours for the info panel.
	BiomeLabelColors = map[string]color.RGBA{
		"forest": {82, 183, 136, 255},
		"snow":   {241, 250, 238, 255},
		"desert": {244, 162, 97, 255},
		"beach":  {255, 255, 0, 255},
		"water":  {72, 202, 228, 255},
	}
)
