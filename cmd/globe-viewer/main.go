// cmd/globe-viewer/main.go
//
// Standalone 3D viewer for the region catalog. The ebiten app fakes depth
// with an orthographic projection; this one puts the same catalog on a real
// sphere with a perspective camera.
package main

import (
	"fmt"
	"log"

	"go-biome-globe/internal/app"
	"go-biome-globe/internal/defs"
	"go-biome-globe/internal/event"
	"go-biome-globe/pkg/geo"
	"go-biome-globe/pkg/globemap"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	globeRadius  = 5.0
	regionLift   = 1.01 // hexes float just off the sphere surface
	cameraDist   = 14.0
	yawSpeed     = 0.02
	pitchStep    = 0.05
	pitchMax     = 1.45
	fogStart     = float32(10.0)
	fogEnd       = float32(22.0)
	selectedLift = 1.03
)

// ColorLerp blends two colours component-wise.
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

// raySphereHit intersects a picking ray with the globe and returns the near
// intersection point.
func raySphereHit(ray rl.Ray, radius float32) (rl.Vector3, bool) {
	oc := ray.Position
	b := rl.Vector3DotProduct(oc, ray.Direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return rl.Vector3{}, false
	}
	t := -b - math32.Sqrt(disc)
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}

// spherePos places a lat/lon point on the rendered globe.
func spherePos(p geo.GeoPoint, radius float32) rl.Vector3 {
	sp := geo.Project(p.Lat, p.Lon, 1)
	return rl.NewVector3(float32(sp.X)*radius, float32(sp.Y)*radius, float32(sp.Z)*radius)
}

// drawHexFan paints a region as six triangles around its centre. Both
// windings are drawn so backface culling never eats a tile.
func drawHexFan(center rl.Vector3, verts [6]rl.Vector3, col rl.Color) {
	for i := 0; i < 6; i++ {
		a := verts[i]
		b := verts[(i+1)%6]
		rl.DrawTriangle3D(center, a, b, col)
		rl.DrawTriangle3D(center, b, a, col)
	}
}

func main() {
	if err := defs.LoadRegionDefinitions(""); err != nil {
		log.Fatal(err)
	}
	globe, err := app.NewGlobe(event.NewDispatcher())
	if err != nil {
		log.Fatal(err)
	}

	backgroundColor := rl.NewColor(8, 10, 18, 255)
	oceanColor := rl.NewColor(18, 38, 60, 255)
	highlight := rl.NewColor(255, 236, 120, 255)

	rl.InitWindow(screenWidth, screenHeight, "Biome Globe Viewer | Q/E - Rotate, Wheel - Tilt, Click - Inspect")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Fovy = 45.0
	camera.Projection = rl.CameraPerspective

	yaw := float32(0.6)
	pitch := float32(0.35)

	var selected globemap.Region
	hasSelected := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			yaw -= yawSpeed
		}
		if rl.IsKeyDown(rl.KeyE) {
			yaw += yawSpeed
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			pitch += wheel * pitchStep
			if pitch > pitchMax {
				pitch = pitchMax
			} else if pitch < -pitchMax {
				pitch = -pitchMax
			}
		}

		camera.Position = rl.NewVector3(
			cameraDist*math32.Cos(pitch)*math32.Sin(yaw),
			cameraDist*math32.Sin(pitch),
			cameraDist*math32.Cos(pitch)*math32.Cos(yaw),
		)

		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			ray := rl.GetMouseRay(rl.GetMousePosition(), camera)
			if hit, ok := raySphereHit(ray, globeRadius); ok {
				sp := geo.SpherePoint{
					X: float64(hit.X) / globeRadius,
					Y: float64(hit.Y) / globeRadius,
					Z: float64(hit.Z) / globeRadius,
				}
				if region, ok := globe.RegionAt(geo.Unproject(sp)); ok {
					selected = region
					hasSelected = true
				} else {
					hasSelected = false
				}
			} else {
				hasSelected = false
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		rl.BeginMode3D(camera)
		rl.DrawSphere(rl.NewVector3(0, 0, 0), globeRadius, oceanColor)

		for _, region := range globe.Regions {
			lift := float32(regionLift)
			baseColor := rl.NewColor(region.Color.R, region.Color.G, region.Color.B, 255)
			if hasSelected && region.ID == selected.ID {
				lift = selectedLift
				baseColor = highlight
			}

			center := spherePos(region.Center, globeRadius*lift)

			distance := rl.Vector3Distance(camera.Position, center)
			fogFactor := (distance - fogStart) / (fogEnd - fogStart)
			if fogFactor < 0 {
				fogFactor = 0
			}
			if fogFactor > 1 {
				fogFactor = 1
			}
			finalColor := ColorLerp(baseColor, backgroundColor, fogFactor)

			var verts [6]rl.Vector3
			for i, v := range region.Vertices() {
				verts[i] = spherePos(v, globeRadius*lift)
			}
			drawHexFan(center, verts, finalColor)
		}

		rl.EndMode3D()

		rl.DrawText("Q/E rotate, wheel tilts, click a region", 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)

		if hasSelected {
			y := int32(screenHeight - 110)
			rl.DrawRectangle(10, y-10, 460, 100, rl.NewColor(25, 35, 45, 230))
			rl.DrawText(selected.Name, 20, y, 24, rl.White)
			rl.DrawText(fmt.Sprintf("Biome: %s", selected.Biome), 20, y+30, 18, rl.LightGray)
			rl.DrawText(fmt.Sprintf("Location: %.1f, %.1f", selected.Center.Lat, selected.Center.Lon), 20, y+52, 18, rl.LightGray)
			rl.DrawText(selected.Description, 20, y+74, 16, rl.Gray)
		}

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
