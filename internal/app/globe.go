// internal/app/globe.go
package app

import (
	"fmt"
	"log"

	"go-biome-globe/internal/defs"
	"go-biome-globe/internal/event"
	"go-biome-globe/pkg/geo"
	"go-biome-globe/pkg/globemap"
)

// Globe owns the region catalog and the current selection. The catalog is
// built once here and treated as read-only for the rest of the session.
type Globe struct {
	Regions   []globemap.Region
	Selection SelectionState

	byID       map[string]globemap.Region
	dispatcher *event.Dispatcher
}

// NewGlobe builds the region catalog from the loaded definitions and wires
// the scene into the event dispatcher.
func NewGlobe(dispatcher *event.Dispatcher) (*Globe, error) {
	candidates := make([]globemap.Candidate, 0, len(defs.RegionCatalog))
	for _, def := range defs.RegionCatalog {
		candidates = append(candidates, globemap.Candidate{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Lat:         def.Lat,
			Lon:         def.Lon,
			SizeRadius:  def.SizeRadius,
			ColorHint:   def.Color,
		})
	}

	regions, err := globemap.GenerateRegions(globemap.Config{
		Mode:       globemap.ModeCurated,
		Candidates: candidates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build region catalog: %w", err)
	}
	log.Printf("Region catalog built: %d of %d candidates placed", len(regions), len(candidates))

	byID := make(map[string]globemap.Region, len(regions))
	for _, r := range regions {
		byID[r.ID] = r
	}

	g := &Globe{
		Regions:    regions,
		Selection:  Cleared(),
		byID:       byID,
		dispatcher: dispatcher,
	}
	dispatcher.Subscribe(event.ClearSelectionRequest, g)
	return g, nil
}

// RegionByID looks a region up in the accepted catalog.
func (g *Globe) RegionByID(id string) (globemap.Region, bool) {
	r, ok := g.byID[id]
	return r, ok
}

// RegionAt returns the region whose footprint covers the given geographic
// point, if any. With the catalog non-overlapping at 0.9 of combined radii,
// the nearest covering centre is unambiguous enough for picking.
func (g *Globe) RegionAt(p geo.GeoPoint) (globemap.Region, bool) {
	sp := geo.Project(p.Lat, p.Lon, 1)

	var best globemap.Region
	bestDist := -1.0
	for _, r := range g.Regions {
		dist := sp.DistanceTo(geo.Project(r.Center.Lat, r.Center.Lon, 1))
		if dist <= r.SizeRadius && (bestDist < 0 || dist < bestDist) {
			best = r
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

// SelectRegion makes the region active and announces it.
func (g *Globe) SelectRegion(r globemap.Region) {
	if g.Selection.Active && g.Selection.RegionID == r.ID {
		return
	}
	g.Selection = Select(r)
	g.dispatcher.Dispatch(event.Event{Type: event.RegionSelected, Data: r.ID})
}

// ClearSelection resets the selection and announces it, if there was one.
func (g *Globe) ClearSelection() {
	if !g.Selection.Active {
		return
	}
	g.Selection = Cleared()
	g.dispatcher.Dispatch(event.Event{Type: event.SelectionCleared})
}

// SelectedRegion returns the active region, if any.
func (g *Globe) SelectedRegion() (globemap.Region, bool) {
	if !g.Selection.Active {
		return globemap.Region{}, false
	}
	return g.RegionByID(g.Selection.RegionID)
}

// OnEvent lets UI elements request a reset without reaching into the scene.
func (g *Globe) OnEvent(e event.Event) {
	if e.Type == event.ClearSelectionRequest {
		g.ClearSelection()
	}
}
