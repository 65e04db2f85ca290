package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game (home screen, slides, a minigame round, a quiz).
// Each scene has its own update and rendering logic and reports completion through a
// callback supplied by whoever created it.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
