// internal/state/state_test.go
package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type stubState struct {
	entered int
	exited  int
	updates int
}

func (s *stubState) Enter()                   { s.entered++ }
func (s *stubState) Update(deltaTime float64) { s.updates++ }
func (s *stubState) Draw(screen *ebiten.Image) {}
func (s *stubState) Exit()                    { s.exited++ }

func TestStateMachineTransitions(t *testing.T) {
	sm := NewStateMachine()
	first := &stubState{}
	second := &stubState{}

	sm.SetState(first)
	assert.Equal(t, 1, first.entered)
	assert.Equal(t, 0, first.exited)

	sm.Update(0.016)
	sm.Update(0.016)
	assert.Equal(t, 2, first.updates)

	sm.SetState(second)
	assert.Equal(t, 1, first.exited)
	assert.Equal(t, 1, second.entered)

	sm.Update(0.016)
	assert.Equal(t, 2, first.updates, "old state must stop receiving updates")
	assert.Equal(t, 1, second.updates)
}

func TestStateMachineNilStateIsSafe(t *testing.T) {
	sm := NewStateMachine()
	sm.Update(0.016) // no state set yet

	first := &stubState{}
	sm.SetState(first)
	sm.SetState(nil)
	assert.Equal(t, 1, first.exited)
	sm.Update(0.016)
	assert.Equal(t, 0, first.updates)
}
