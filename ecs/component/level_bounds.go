package component

import "github.com/jakecoffman/cp"

// LevelPlayerBoundary is the world-space rectangle the player is clamped to.
// It is replaced wholesale on every level transition.
type LevelPlayerBoundary struct {
	cp.BB
}

var LevelPlayerBoundaryComponent = NewComponent[LevelPlayerBoundary]()

// LevelCameraBoundary is the world-space rectangle the camera viewport may show.
type LevelCameraBoundary struct {
	cp.BB
}

var LevelCameraBoundaryComponent = NewComponent[LevelCameraBoundary]()

// SpawnPoint hands the player's next location from the level being left to
// the level being entered.
type SpawnPoint struct {
	cp.Vector
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
