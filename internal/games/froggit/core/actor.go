package core

import (
	"math"

	platformcore "github.com/vovakirdan/froggit/internal/core"
)

// Animation frame counts. Frame 0 is the resting pose.
const (
	SlideFrames = 5 // hop cycle 0..4 and back
	DeathFrames = 8 // splat cycle 0..7, played once
)

// Actor is the frog. Pos is the lower-left corner of the cell it occupies,
// so a frog at rest on the grid has coordinates that are whole multiples of
// the grid size (riding a platform moves it off-grid until its next hop).
type Actor struct {
	Pos      platformcore.Vec
	Facing   Dir
	Alive    bool
	InMotion bool
	Frame    int

	grid   float64
	hitbox platformcore.Box // Relative to Pos
}

func newActor(pos platformcore.Vec, hit HitRect, grid float64) *Actor {
	hitbox := platformcore.NewBox(0, 0, grid, grid)
	if !hit.IsZero() {
		hitbox = platformcore.NewBox(hit.X0*grid, hit.Y0*grid, (hit.X1-hit.X0)*grid, (hit.Y1-hit.Y0)*grid)
	}
	return &Actor{
		Pos:    pos,
		Facing: DirNorth,
		Alive:  true,
		grid:   grid,
		hitbox: hitbox,
	}
}

// Box returns the frog's collision box in world coordinates.
func (a Actor) Box() platformcore.Box {
	return a.hitbox.Translate(a.Pos)
}

// Center returns the reference point used for lane and platform tests.
func (a Actor) Center() platformcore.Vec {
	return platformcore.Vec{X: a.Pos.X + a.grid/2, Y: a.Pos.Y + a.grid/2}
}

// Cell returns the grid cell nearest to the frog.
func (a Actor) Cell() (col, row int) {
	return int(math.Round(a.Pos.X / a.grid)), int(math.Round(a.Pos.Y / a.grid))
}
