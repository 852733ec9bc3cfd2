package core

import (
	"math"

	platformcore "github.com/vovakirdan/froggit/internal/core"
)

// RoutineKind selects what an in-flight routine animates.
type RoutineKind uint8

const (
	RoutineSlide RoutineKind = iota
	RoutineDeath
)

// String returns the string representation of a routine kind.
func (k RoutineKind) String() string {
	if k == RoutineDeath {
		return "Death"
	}
	return "Slide"
}

// Routine is a resumable animation fed with tick deltas. A slide moves the
// frog linearly to Target while cycling the hop frames; a death plays the
// splat frames once in place.
type Routine struct {
	Kind   RoutineKind
	Dir    Dir
	From   platformcore.Vec
	Target platformcore.Vec

	duration   float64
	distance   float64
	unit       platformcore.Vec // Direction of travel, length 1
	travelled  float64
	frameClock float64 // Time since the last frame step
	falling    bool    // Hop cycle is on its way back to rest
	done       bool
}

// newSlide prepares a hop from the frog's current position to target.
func newSlide(a *Actor, dir Dir, target platformcore.Vec, duration float64) *Routine {
	r := &Routine{
		Kind:     RoutineSlide,
		Dir:      dir,
		From:     a.Pos,
		Target:   target,
		duration: duration,
	}
	dx, dy := target.X-a.Pos.X, target.Y-a.Pos.Y
	// Snapping can add a sideways correction to a vertical hop.
	r.distance = math.Hypot(dx, dy)
	if r.distance > 0 {
		r.unit = platformcore.Vec{X: dx / r.distance, Y: dy / r.distance}
	}
	return r
}

// newDeath prepares the splat sequence.
func newDeath(a *Actor, duration float64) *Routine {
	return &Routine{
		Kind:     RoutineDeath,
		Dir:      a.Facing,
		From:     a.Pos,
		Target:   a.Pos,
		duration: duration,
	}
}

// Done reports whether the routine has finished.
func (r *Routine) Done() bool {
	return r.done
}

// Advance pushes dt seconds into the routine, updating the frog's position
// and frame. It returns true once the routine has finished.
func (r *Routine) Advance(a *Actor, dt float64) bool {
	if r.done {
		return true
	}
	if r.Kind == RoutineDeath {
		return r.advanceDeath(a, dt)
	}
	return r.advanceSlide(a, dt)
}

func (r *Routine) advanceSlide(a *Actor, dt float64) bool {
	if r.distance <= 0 {
		r.finish(a)
		return true
	}

	r.frameClock += dt
	step := r.duration / 8
	for r.frameClock > step {
		r.frameClock -= step
		r.stepHop(a)
	}

	r.travelled += r.distance / r.duration * dt
	if r.travelled >= r.distance {
		r.finish(a)
		return true
	}
	a.Pos = platformcore.Vec{
		X: r.From.X + r.unit.X*r.travelled,
		Y: r.From.Y + r.unit.Y*r.travelled,
	}
	return false
}

// stepHop moves the hop frame one step up the cycle, then back down.
func (r *Routine) stepHop(a *Actor) {
	if !r.falling {
		a.Frame++
		if a.Frame >= SlideFrames-1 {
			a.Frame = SlideFrames - 1
			r.falling = true
		}
		return
	}
	a.Frame--
	if a.Frame <= 0 {
		a.Frame = 0
		r.falling = false
	}
}

func (r *Routine) finish(a *Actor) {
	a.Pos = r.Target
	a.Frame = 0
	r.done = true
}

func (r *Routine) advanceDeath(a *Actor, dt float64) bool {
	r.frameClock += dt
	step := r.duration / 8
	for r.frameClock > step {
		r.frameClock -= step
		a.Frame++
		if a.Frame >= DeathFrames-1 {
			a.Frame = DeathFrames - 1
			r.done = true
			return true
		}
	}
	return false
}
