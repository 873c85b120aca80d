// internal/state/menu_state.go
package state

import (
	"image"
	"image/color"

	"go-biome-globe/internal/assets"
	"go-biome-globe/internal/config"
	"go-biome-globe/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState is the title screen.
type MenuState struct {
	sm          *StateMachine
	fonts       *assets.Fonts
	seed        int64
	startButton ui.Button
}

func NewMenuState(sm *StateMachine, fonts *assets.Fonts, seed int64) *MenuState {
	btnWidth, btnHeight := 200, 48
	return &MenuState{
		sm:    sm,
		fonts: fonts,
		seed:  seed,
		startButton: ui.Button{
			Rect: image.Rect(
				(config.ScreenWidth-btnWidth)/2,
				config.ScreenHeight/2,
				(config.ScreenWidth+btnWidth)/2,
				config.ScreenHeight/2+btnHeight,
			),
			Text:  "Explore",
			Color: color.RGBA{R: 70, G: 130, B: 180, A: 255},
		},
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGlobeState(m.sm, m.fonts, m.seed))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.startButton.Contains(x, y) {
			m.sm.SetState(NewGlobeState(m.sm, m.fonts, m.seed))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "Biome Globe"
	bounds := text.BoundString(m.fonts.Title, title)
	tx := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, title, m.fonts.Title, tx, config.ScreenHeight/2-60, config.TextLightColor)

	m.startButton.Draw(screen, m.fonts.Regular)
}

func (m *MenuState) Exit() {}
