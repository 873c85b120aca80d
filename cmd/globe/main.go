// cmd/globe/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-biome-globe/internal/assets"
	"go-biome-globe/internal/config"
	"go-biome-globe/internal/defs"
	"go-biome-globe/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGlobe = true // true starts on the globe, false on the menu

type App struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "path to the YAML settings file")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := defs.LoadRegionDefinitions(settings.RegionsFile); err != nil {
		log.Fatal(err)
	}

	fonts, err := assets.LoadFonts(config.RegularFontSize, config.TitleFontSize)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	if startFromGlobe {
		sm.SetState(state.NewGlobeState(sm, fonts, settings.Seed))
	} else {
		sm.SetState(state.NewMenuState(sm, fonts, settings.Seed))
	}

	app := &App{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Screen.Width, settings.Screen.Height)
	ebiten.SetWindowTitle("Biome Globe")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
