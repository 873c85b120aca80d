// pkg/render/globe_renderer.go
package render

import (
	"image/color"
	"math"
	"sort"

	"go-biome-globe/internal/config"
	"go-biome-globe/internal/utils"
	"go-biome-globe/pkg/geo"
	"go-biome-globe/pkg/globemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GlobeRenderer draws the star background, the globe disc and the region
// hexes. The background is rendered once up front; everything on the globe
// moves with the camera and is redrawn per frame.
type GlobeRenderer struct {
	regions      []globemap.Region
	screenWidth  int
	screenHeight int

	bgImage *ebiten.Image
	fillImg *ebiten.Image

	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16

	order []regionDepth // scratch, reused every frame
}

type regionDepth struct {
	index int
	depth float64
}

// NewGlobeRenderer prepares the renderer and pre-renders the star field
// from the given PRNG so a seed reproduces the same sky.
func NewGlobeRenderer(regions []globemap.Region, rng *utils.PRNGService, screenWidth, screenHeight int) *GlobeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &GlobeRenderer{
		regions:      regions,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		bgImage:      ebiten.NewImage(screenWidth, screenHeight),
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 24),
		fillIs:       make([]uint16, 0, 24),
		strokeVs:     make([]ebiten.Vertex, 0, 48),
		strokeIs:     make([]uint16, 0, 48),
		order:        make([]regionDepth, 0, len(regions)),
	}
	r.renderBackground(rng)
	return r
}

// renderBackground fills the offscreen image with the static star field.
func (r *GlobeRenderer) renderBackground(rng *utils.PRNGService) {
	r.bgImage.Fill(config.BackgroundColor)
	for i := 0; i < config.StarCount; i++ {
		x := float32(rng.Intn(r.screenWidth))
		y := float32(rng.Intn(r.screenHeight))
		radius := float32(0.4 + rng.Float64()*(config.StarMaxRadius-0.4))
		c := ShadeColor(config.StarColor, 0.4+rng.Float64()*0.6)
		vector.DrawFilledCircle(r.bgImage, x, y, radius, c, true)
	}
}

// Draw renders one frame: background, ocean disc, then the visible region
// hexes back to front. selectedID gets the highlight treatment.
func (r *GlobeRenderer) Draw(screen *ebiten.Image, cam *Camera, selectedID string) {
	screen.DrawImage(r.bgImage, nil)

	cx := float32(r.screenWidth) / 2
	cy := float32(r.screenHeight) / 2
	radius := float32(cam.Zoom)
	vector.DrawFilledCircle(screen, cx, cy, radius, config.OceanColor, true)
	vector.StrokeCircle(screen, cx, cy, radius, float32(config.StrokeWidth), config.OceanRimColor, true)

	// Depth-sort so hexes nearer the viewer paint over the ones sliding
	// toward the limb.
	r.order = r.order[:0]
	for i, region := range r.regions {
		_, _, depth := cam.ProjectPoint(geo.Project(region.Center.Lat, region.Center.Lon, 1))
		if depth <= config.LimbCullDepth {
			continue
		}
		r.order = append(r.order, regionDepth{index: i, depth: depth})
	}
	sort.Slice(r.order, func(a, b int) bool {
		return r.order[a].depth < r.order[b].depth
	})

	for _, rd := range r.order {
		region := r.regions[rd.index]
		r.drawRegion(screen, cam, region, rd.depth, region.ID == selectedID)
	}
}

// drawRegion builds the hex outline path in screen space and paints it.
func (r *GlobeRenderer) drawRegion(screen *ebiten.Image, cam *Camera, region globemap.Region, depth float64, selected bool) {
	verts := region.Vertices()

	path := vector.Path{}
	for i, v := range verts {
		sp := geo.Project(v.Lat, v.Lon, config.RegionLiftFactor)
		sx, sy, _ := cam.ProjectPoint(sp)
		if i == 0 {
			path.MoveTo(float32(sx), float32(sy))
		} else {
			path.LineTo(float32(sx), float32(sy))
		}
	}
	path.Close()

	// Fade toward the limb.
	fillColor := ShadeColor(region.Color, 0.55+0.45*math.Min(depth, 1))

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	strokeColor := LightenColor(fillColor, 0.25)
	strokeWidth := float32(config.StrokeWidth)
	if selected {
		strokeColor = config.HighlightColor
		strokeWidth *= 2.5
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: strokeWidth,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(strokeColor.R) / 255
		r.strokeVs[i].ColorG = float32(strokeColor.G) / 255
		r.strokeVs[i].ColorB = float32(strokeColor.B) / 255
		r.strokeVs[i].ColorA = float32(strokeColor.A) / 255
	}
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
