package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputState holds the movement intents for the current frame. Flags are
// level-triggered and last-state-wins: the keyboard is polled once per frame
// and the physics engine reads the result once.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// Poll refreshes the intent flags from the keyboard. Arrow keys alias WASD,
// and Space aliases the up keys for jumping.
func (in *InputState) Poll() {
	in.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)
}
