// internal/state/globe_state.go
package state

import (
	"log"
	"time"

	"go-biome-globe/internal/app"
	"go-biome-globe/internal/assets"
	"go-biome-globe/internal/config"
	"go-biome-globe/internal/event"
	"go-biome-globe/internal/ui"
	"go-biome-globe/internal/utils"
	"go-biome-globe/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GlobeState is the main screen: the globe, the camera and the info panel.
type GlobeState struct {
	sm        *StateMachine
	globe     *app.Globe
	camera    *render.Camera
	renderer  *render.GlobeRenderer
	infoPanel *ui.InfoPanel
	fonts     *assets.Fonts
	seed      int64

	dispatcher    *event.Dispatcher
	lastClickTime time.Time

	dragging   bool
	dragMoved  bool
	lastMouseX int
	lastMouseY int
}

// NewGlobeState builds the whole scene. The region catalog must already be
// loaded into defs.
func NewGlobeState(sm *StateMachine, fonts *assets.Fonts, seed int64) *GlobeState {
	dispatcher := event.NewDispatcher()

	globe, err := app.NewGlobe(dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	rng := utils.NewPRNGService(seed)
	camera := render.NewCamera(config.ScreenWidth, config.ScreenHeight)
	renderer := render.NewGlobeRenderer(globe.Regions, rng, config.ScreenWidth, config.ScreenHeight)
	infoPanel := ui.NewInfoPanel(fonts.Regular, fonts.Title, dispatcher, config.ScreenWidth, config.ScreenHeight)

	gs := &GlobeState{
		sm:            sm,
		globe:         globe,
		camera:        camera,
		renderer:      renderer,
		infoPanel:     infoPanel,
		fonts:         fonts,
		seed:          seed,
		dispatcher:    dispatcher,
		lastClickTime: time.Now(),
	}
	dispatcher.Subscribe(event.RegionSelected, gs)
	dispatcher.Subscribe(event.SelectionCleared, gs)
	return gs
}

// OnEvent reacts to selection changes: the camera swings toward a selected
// region and the panel follows the selection either way.
func (g *GlobeState) OnEvent(e event.Event) {
	switch e.Type {
	case event.RegionSelected:
		id, _ := e.Data.(string)
		if r, ok := g.globe.RegionByID(id); ok {
			g.camera.FocusOn(r.Center)
			g.infoPanel.SetRegion(r)
		}
	case event.SelectionCleared:
		g.infoPanel.Hide()
	}
}

func (g *GlobeState) Enter() {}

func (g *GlobeState) Update(deltaTime float64) {
	g.infoPanel.Update()
	g.camera.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.globe.Selection.Active {
			g.globe.ClearSelection()
		} else {
			g.sm.SetState(NewMenuState(g.sm, g.fonts, g.seed))
		}
		return
	}

	g.handleKeyboard(deltaTime)
	g.handleMouse()
}

func (g *GlobeState) handleKeyboard(deltaTime float64) {
	step := config.RotateSpeed * deltaTime
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.camera.Rotate(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.camera.Rotate(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.camera.Rotate(0, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.camera.Rotate(0, -step)
	}
}

func (g *GlobeState) handleMouse() {
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.camera.AdjustZoom(wheelY * config.ZoomStep)
	}

	cursorX, cursorY := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragMoved = false
		g.lastMouseX = cursorX
		g.lastMouseY = cursorY
		return
	}

	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx := cursorX - g.lastMouseX
		dy := cursorY - g.lastMouseY
		if g.dragMoved || abs(dx) > config.DragThreshold || abs(dy) > config.DragThreshold {
			g.dragMoved = true
			g.camera.Rotate(-float64(dx)*config.DragSensitivity, float64(dy)*config.DragSensitivity)
			g.lastMouseX = cursorX
			g.lastMouseY = cursorY
		}
		return
	}

	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		wasDrag := g.dragMoved
		g.dragging = false
		g.dragMoved = false
		if wasDrag {
			return
		}
		g.handleClick(cursorX, cursorY)
	}
}

// handleClick resolves a press-and-release into a pick on the globe.
func (g *GlobeState) handleClick(cursorX, cursorY int) {
	now := time.Now()
	if now.Sub(g.lastClickTime) < config.ClickDebounceTime*time.Millisecond {
		return
	}
	g.lastClickTime = now

	if g.infoPanel.ContainsCursor(cursorX, cursorY) {
		return // the panel handles its own clicks
	}

	point, onGlobe := g.camera.UnprojectCursor(float64(cursorX), float64(cursorY))
	if !onGlobe {
		g.globe.ClearSelection()
		return
	}
	if region, ok := g.globe.RegionAt(point); ok {
		g.globe.SelectRegion(region)
	} else {
		g.globe.ClearSelection()
	}
}

func (g *GlobeState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.camera, g.globe.Selection.RegionID)
	g.infoPanel.Draw(screen)

	hint := "Drag to rotate  |  wheel to zoom  |  click a region"
	text.Draw(screen, hint, g.fonts.Regular, 15, 25, config.TextDimColor)
}

func (g *GlobeState) Exit() {}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
