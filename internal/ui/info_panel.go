// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"go-biome-globe/internal/config"
	"go-biome-globe/internal/event"
	"go-biome-globe/pkg/globemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// InfoPanel slides up from the bottom edge with the selected region's
// details. It never changes the selection itself; the close button asks
// for a reset through the dispatcher.
type InfoPanel struct {
	IsVisible bool

	region    globemap.Region
	hasRegion bool

	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64

	CloseButton     Button
	eventDispatcher *event.Dispatcher

	screenWidth  int
	screenHeight int
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel(face, titleFace font.Face, dispatcher *event.Dispatcher, screenWidth, screenHeight int) *InfoPanel {
	return &InfoPanel{
		fontFace:        face,
		titleFontFace:   titleFace,
		currentY:        float64(screenHeight),
		targetY:         float64(screenHeight),
		eventDispatcher: dispatcher,
		screenWidth:     screenWidth,
		screenHeight:    screenHeight,
	}
}

// SetRegion shows the panel with the region's details.
func (p *InfoPanel) SetRegion(r globemap.Region) {
	p.region = r
	p.hasRegion = true
	p.IsVisible = true
	p.targetY = float64(p.screenHeight - config.PanelHeight)
}

// Hide slides the panel away.
func (p *InfoPanel) Hide() {
	p.targetY = float64(p.screenHeight)
}

// Update advances the slide animation and handles the close button.
func (p *InfoPanel) Update() {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < config.PanelAnimSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += config.PanelAnimSpeed
		} else {
			p.currentY -= config.PanelAnimSpeed
		}

		if p.currentY >= float64(p.screenHeight) {
			p.IsVisible = false
			p.hasRegion = false
		}
	}

	if p.IsVisible && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cursorX, cursorY := ebiten.CursorPosition()
		if p.CloseButton.Contains(cursorX, cursorY) {
			p.eventDispatcher.Dispatch(event.Event{Type: event.ClearSelectionRequest})
		}
	}
}

// ContainsCursor reports whether the cursor is over the visible panel, so
// clicks there are not treated as globe picks.
func (p *InfoPanel) ContainsCursor(x, y int) bool {
	if !p.IsVisible {
		return false
	}
	rect := p.panelRect()
	return image.Point{X: x, Y: y}.In(rect)
}

func (p *InfoPanel) panelRect() image.Rectangle {
	return image.Rect(
		config.PanelMargin,
		int(p.currentY)+config.PanelMargin,
		p.screenWidth-config.PanelMargin,
		int(p.currentY)+config.PanelHeight-config.PanelMargin,
	)
}

// Draw paints the panel and its contents.
func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= float64(p.screenHeight) {
		return
	}

	rect := p.panelRect()
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), config.PanelBgColor, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, config.PanelBorderColor, true)

	if !p.hasRegion {
		return
	}

	p.drawRegionInfo(screen, rect.Min.X+15, rect.Min.Y+15)
	p.drawCloseButton(screen, rect)
}

func (p *InfoPanel) drawRegionInfo(screen *ebiten.Image, startX, startY int) {
	y := startY + config.TitleFontSize
	text.Draw(screen, p.region.Name, p.titleFontFace, startX, y, config.TextLightColor)

	y += config.LineHeight + 4
	biomeColor := config.TextLightColor
	if c, ok := config.BiomeLabelColors[string(p.region.Biome)]; ok {
		biomeColor = c
	}
	text.Draw(screen, fmt.Sprintf("Biome: %s", titleCase(string(p.region.Biome))), p.fontFace, startX, y, biomeColor)

	y += config.LineHeight
	text.Draw(screen, fmt.Sprintf("Location: %.1f°, %.1f°", p.region.Center.Lat, p.region.Center.Lon), p.fontFace, startX, y, config.TextDimColor)

	y += config.LineHeight
	text.Draw(screen, p.region.Description, p.fontFace, startX, y, config.TextLightColor)
}

func (p *InfoPanel) drawCloseButton(screen *ebiten.Image, rect image.Rectangle) {
	btnWidth := 110
	btnHeight := 36
	p.CloseButton = Button{
		Rect: image.Rect(
			rect.Max.X-btnWidth-20,
			rect.Max.Y-btnHeight-16,
			rect.Max.X-20,
			rect.Max.Y-16,
		),
		Text:  "Close",
		Color: color.RGBA{R: 100, G: 60, B: 60, A: 255},
	}
	p.CloseButton.Draw(screen, p.fontFace)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
