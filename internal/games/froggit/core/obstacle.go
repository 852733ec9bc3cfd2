package core

import (
	platformcore "github.com/vovakirdan/froggit/internal/core"
)

// Obstacle is a car, log, exit or other rectangle inside a lane.
type Obstacle struct {
	Image string
	Role  Role
	Pos   platformcore.Vec // Lower-left corner of the image
	Size  platformcore.Vec // Image size in world units

	hitbox     platformcore.Box // Relative to Pos
	supporting bool             // Carrying the frog this tick
	claimed    bool             // Exit slots only; never reverts
}

// newObstacle builds an obstacle for the given lane row from layout and hitbox data.
func newObstacle(spec ObstacleSpec, img ImageSpec, terrain Terrain, row int, grid float64) Obstacle {
	width := img.Width
	if width <= 0 {
		width = 1
	}
	role := img.Role
	if role == RoleUnset {
		role = DefaultRole(terrain)
	}

	size := platformcore.Vec{X: width * grid, Y: grid}
	hitbox := platformcore.NewBox(0, 0, size.X, size.Y)
	if h := img.Hitbox; !h.IsZero() {
		hitbox = platformcore.NewBox(h.X0*grid, h.Y0*grid, (h.X1-h.X0)*grid, (h.Y1-h.Y0)*grid)
	}

	return Obstacle{
		Image:  spec.Image,
		Role:   role,
		Pos:    platformcore.Vec{X: spec.Position * grid, Y: float64(row) * grid},
		Size:   size,
		hitbox: hitbox,
	}
}

// Box returns the collision box in world coordinates.
func (o Obstacle) Box() platformcore.Box {
	return o.hitbox.Translate(o.Pos)
}

// Bounds returns the full image rectangle in world coordinates.
func (o Obstacle) Bounds() platformcore.Box {
	return platformcore.NewBox(o.Pos.X, o.Pos.Y, o.Size.X, o.Size.Y)
}

// Supporting reports whether the frog was found standing on this obstacle
// by the latest resolution.
func (o Obstacle) Supporting() bool {
	return o.supporting
}

// Claimed reports whether this exit slot has been reached.
func (o Obstacle) Claimed() bool {
	return o.claimed
}
