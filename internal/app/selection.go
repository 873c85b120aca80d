// internal/app/selection.go
package app

import "go-biome-globe/pkg/globemap"

// SelectionState says which region, if any, is active. It is a plain value:
// transitions return a new state instead of mutating anything, so they can
// be tested without a scene or a window.
type SelectionState struct {
	RegionID string
	Active   bool
}

// Select returns the state with the given region active.
func Select(r globemap.Region) SelectionState {
	return SelectionState{RegionID: r.ID, Active: true}
}

// Cleared returns the state with no active region.
func Cleared() SelectionState {
	return SelectionState{}
}
