package core

import (
	platformcore "github.com/vovakirdan/froggit/internal/core"
)

// Lane is one horizontal strip of the play field. All obstacles in a lane
// share its velocity.
type Lane struct {
	row        int
	terrain    Terrain
	grid       float64
	width      float64 // World units
	wrapMargin float64 // World units
	baseSpeed  float64
	velocity   float64
	obstacles  []Obstacle
}

// newLane builds lane row from its spec. Unknown images get the lane's
// default role and a one-cell box.
func newLane(row int, spec LaneSpec, hb Hitboxes, cols int, wrapMargin, grid, speedScale float64) *Lane {
	l := &Lane{
		row:        row,
		terrain:    spec.Terrain,
		grid:       grid,
		width:      float64(cols) * grid,
		wrapMargin: wrapMargin * grid,
		baseSpeed:  spec.Speed,
		velocity:   spec.Speed * speedScale,
		obstacles:  make([]Obstacle, 0, len(spec.Obstacles)),
	}
	for _, o := range spec.Obstacles {
		l.obstacles = append(l.obstacles, newObstacle(o, hb.Images[o.Image], spec.Terrain, row, grid))
	}
	return l
}

// Row returns the lane's row index (0 is the bottom lane).
func (l *Lane) Row() int {
	return l.row
}

// Terrain returns the lane's terrain kind.
func (l *Lane) Terrain() Terrain {
	return l.terrain
}

// Velocity returns the current obstacle velocity in world units per second.
func (l *Lane) Velocity() float64 {
	return l.velocity
}

// Box returns the lane background in world coordinates.
func (l *Lane) Box() platformcore.Box {
	return platformcore.NewBox(0, float64(l.row)*l.grid, l.width, l.grid)
}

// Len returns the number of obstacles in the lane.
func (l *Lane) Len() int {
	return len(l.obstacles)
}

// Obstacle returns a copy of obstacle i.
func (l *Lane) Obstacle(i int) Obstacle {
	return l.obstacles[i]
}

// Obstacles returns a copy of the lane's obstacles for drawing.
func (l *Lane) Obstacles() []Obstacle {
	out := make([]Obstacle, len(l.obstacles))
	copy(out, l.obstacles)
	return out
}

// wrapCycle is the distance after which a moving obstacle is back where it started.
func (l *Lane) wrapCycle() float64 {
	return l.width + 2*l.wrapMargin
}

// setSpeedScale rescales the lane velocity relative to the level file speed.
func (l *Lane) setSpeedScale(scale float64) {
	l.velocity = l.baseSpeed * scale
}

// advance moves every obstacle by velocity*dt and wraps the ones that left
// the field. It returns the displacement applied to the lane.
func (l *Lane) advance(dt float64) float64 {
	dx := l.velocity * dt
	if dx == 0 {
		return 0
	}
	cycle := l.wrapCycle()

	for i := range l.obstacles {
		o := &l.obstacles[i]
		o.Pos.X += dx

		// Shift by whole cycles so the overshoot is kept and wraps stay exact.
		if l.velocity > 0 {
			for o.Pos.X >= l.width+l.wrapMargin {
				o.Pos.X -= cycle
			}
		} else {
			for o.Pos.X+o.Size.X <= -l.wrapMargin {
				o.Pos.X += cycle
			}
		}
	}
	return dx
}

// clearSupport drops the supporting flags set by the previous resolution.
func (l *Lane) clearSupport() {
	for i := range l.obstacles {
		l.obstacles[i].supporting = false
	}
}

// supporter returns the index of the obstacle flagged as carrying the frog,
// or -1.
func (l *Lane) supporter() int {
	for i, o := range l.obstacles {
		if o.supporting {
			return i
		}
	}
	return -1
}

// platformUnder returns the index of the platform whose box contains p, or -1.
func (l *Lane) platformUnder(p platformcore.Vec) int {
	for i, o := range l.obstacles {
		if o.Role == RolePlatform && o.Box().Contains(p) {
			return i
		}
	}
	return -1
}

// claim marks exit slot i as reached. It returns false if i is not an
// unclaimed exit slot.
func (l *Lane) claim(i int) bool {
	if i < 0 || i >= len(l.obstacles) {
		return false
	}
	o := &l.obstacles[i]
	if o.Role != RoleExitSlot || o.claimed {
		return false
	}
	o.claimed = true
	return true
}

// slotCount returns the number of exit slots in the lane.
func (l *Lane) slotCount() int {
	n := 0
	for _, o := range l.obstacles {
		if o.Role == RoleExitSlot {
			n++
		}
	}
	return n
}
