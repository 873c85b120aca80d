// internal/event/types.go
package event

const (
	RegionSelected        EventType = "RegionSelected"        // Data: region id (string)
	SelectionCleared      EventType = "SelectionCleared"      // selection reset to none
	ClearSelectionRequest EventType = "ClearSelectionRequest" // UI asks for the selection to go away
)
