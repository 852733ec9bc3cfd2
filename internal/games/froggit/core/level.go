package core

import (
	platformcore "github.com/vovakirdan/froggit/internal/core"
)

// State is the level controller's phase.
type State uint8

const (
	StateIdle        State = iota // awaiting input
	StateAnimating                // a slide or death routine is in flight
	StateAttemptOver              // waiting for Respawn
	StateWon
	StateLost
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAnimating:
		return "Animating"
	case StateAttemptOver:
		return "AttemptOver"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Input is the only thing the level needs from the input layer.
type Input interface {
	Pressed(d Dir) bool
}

// AttemptState holds the per-playthrough counters.
type AttemptState struct {
	LivesRemaining int
	GoalsClaimed   int
	TotalGoals     int
}

// Level runs one playthrough. It owns the lanes, the frog and the counters;
// everything outside reads them through accessors and the cue stream.
type Level struct {
	opts     Options
	input    Input
	cols     int
	rows     int
	startCol int
	startRow int
	frogHit  HitRect

	lanes   []*Lane
	actor   *Actor // nil between attempts
	routine *Routine
	pending Outcome // Applied when the current slide finishes
	last    Outcome
	state   State
	attempt AttemptState
	markers []platformcore.Vec
	cues    []Cue
}

// Start builds a level from layout and hitbox data and places the frog on
// the start cell.
func Start(layout Layout, hb Hitboxes, opts Options, input Input) *Level {
	opts = opts.withDefaults()
	l := &Level{
		opts:     opts,
		input:    input,
		cols:     layout.Cols,
		rows:     len(layout.Lanes),
		startCol: layout.StartCol,
		startRow: platformcore.Clamp(layout.StartRow, 0, max(len(layout.Lanes)-1, 0)),
		frogHit:  hb.Frog,
		lanes:    make([]*Lane, len(layout.Lanes)),
		state:    StateIdle,
	}
	if l.startCol < 0 || l.startCol >= l.cols {
		l.startCol = l.cols / 2
	}

	for i, spec := range layout.Lanes {
		lane := newLane(i, spec, hb, layout.Cols, layout.WrapMargin, opts.GridSize, opts.SpeedScale)
		if lane.terrain == TerrainGoal {
			l.attempt.TotalGoals += lane.slotCount()
		}
		l.lanes[i] = lane
	}
	l.attempt.LivesRemaining = opts.Lives
	l.spawn()
	return l
}

func (l *Level) spawn() {
	g := l.opts.GridSize
	pos := platformcore.Vec{X: float64(l.startCol) * g, Y: float64(l.startRow) * g}
	l.actor = newActor(pos, l.frogHit, g)
	l.state = StateIdle
	// Mark a platform under the spawn cell so the ride starts on the first tick.
	// A fatal spawn is handled by the next tick's resolution.
	l.resolveSupport()
}

// resolveSupport reclassifies the resting frog. Water lanes flag the platform
// carrying it; the flags drive the next tick's carry.
func (l *Level) resolveSupport() Outcome {
	l.clearSupport()
	return resolveResident(l.lanes, l.actor)
}

func (l *Level) clearSupport() {
	for _, lane := range l.lanes {
		lane.clearSupport()
	}
}

// Tick advances the level by dt seconds.
func (l *Level) Tick(dt float64) Result {
	ride := l.ridingLane()
	for i, lane := range l.lanes {
		dx := lane.advance(dt)
		if i == ride {
			l.actor.Pos.X += dx
		}
	}

	switch l.state {
	case StateAttemptOver:
		return ResultAttemptOver
	case StateWon:
		return ResultWin
	case StateLost:
		return ResultLoss
	}

	if l.routine != nil {
		if !l.routine.Advance(l.actor, dt) {
			return ResultContinue
		}
		r := l.routine
		l.routine = nil
		l.state = StateIdle
		if r.Kind == RoutineDeath {
			return l.finishDeath()
		}

		l.actor.InMotion = false
		pending := l.pending
		l.pending = Outcome{}
		switch pending.Kind {
		case OutcomeReached:
			return l.reachExit(pending)
		case OutcomeFatal:
			l.beginDeath()
			return ResultContinue
		}
	}

	if l.actor == nil {
		return ResultContinue
	}

	if out := l.resolveSupport(); out.Kind == OutcomeFatal {
		l.last = out
		l.beginDeath()
		return ResultContinue
	}

	for _, d := range inputPriority {
		if l.input != nil && l.input.Pressed(d) {
			l.tryMove(d)
			break
		}
	}
	return ResultContinue
}

// ridingLane returns the lane holding the platform flagged as supporting the
// resting frog, or -1.
func (l *Level) ridingLane() int {
	if l.state != StateIdle || l.actor == nil || !l.actor.Alive {
		return -1
	}
	for i, lane := range l.lanes {
		if lane.supporter() >= 0 {
			return i
		}
	}
	return -1
}

// tryMove turns the frog toward d and starts a hop if the destination is on
// the field and not blocked.
func (l *Level) tryMove(d Dir) {
	a := l.actor
	a.Facing = d

	col, row := a.Cell()
	dc, dr := d.Delta()
	col, row = col+dc, row+dr
	if col < 0 || col >= l.cols || row < 0 || row >= l.rows {
		return
	}

	g := l.opts.GridSize
	target := platformcore.Vec{X: float64(col) * g, Y: float64(row) * g}
	out := probeMove(l.lanes, a, target, d)
	l.last = out
	if out.Kind == OutcomeBlocked {
		return
	}

	if !l.startRoutine(newSlide(a, d, target, l.opts.SlideDuration)) {
		return
	}
	l.pending = out
	a.InMotion = true
	l.cues = append(l.cues, Cue{Kind: CueSlideStarted, Dir: d, Row: row, Slot: -1})
}

// startRoutine installs r unless another routine is still in flight.
func (l *Level) startRoutine(r *Routine) bool {
	if l.routine != nil {
		return false
	}
	l.routine = r
	l.state = StateAnimating
	l.clearSupport()
	return true
}

func (l *Level) beginDeath() {
	a := l.actor
	a.Alive = false
	a.InMotion = false
	a.Frame = 0
	_, row := a.Cell()
	if l.startRoutine(newDeath(a, l.opts.DeathDuration)) {
		l.cues = append(l.cues, Cue{Kind: CueDied, Dir: a.Facing, Row: row, Slot: -1})
	}
}

func (l *Level) finishDeath() Result {
	l.actor = nil
	if l.attempt.LivesRemaining > 0 {
		l.attempt.LivesRemaining--
	}
	return l.conclude()
}

func (l *Level) reachExit(out Outcome) Result {
	lane := l.lanes[out.Lane]
	if lane.claim(out.Slot) {
		l.attempt.GoalsClaimed++
		l.markers = append(l.markers, lane.obstacles[out.Slot].Pos)
		l.cues = append(l.cues, Cue{Kind: CueReachedExit, Dir: l.actor.Facing, Row: lane.row, Slot: out.Slot})
	}
	l.actor = nil
	return l.conclude()
}

// conclude ends the current attempt. Win is checked before loss.
func (l *Level) conclude() Result {
	switch {
	case l.attempt.TotalGoals > 0 && l.attempt.GoalsClaimed >= l.attempt.TotalGoals:
		l.state = StateWon
		return ResultWin
	case l.attempt.LivesRemaining == 0:
		l.state = StateLost
		return ResultLoss
	default:
		l.state = StateAttemptOver
		return ResultAttemptOver
	}
}

// Respawn puts a fresh frog on the start cell after an attempt ended.
// It reports false unless the level is waiting in AttemptOver.
func (l *Level) Respawn() bool {
	if l.state != StateAttemptOver {
		return false
	}
	l.last = Outcome{}
	l.spawn()
	return true
}

// Lanes returns the lanes bottom to top.
func (l *Level) Lanes() []*Lane {
	out := make([]*Lane, len(l.lanes))
	copy(out, l.lanes)
	return out
}

// Actor returns a copy of the frog. ok is false between attempts.
func (l *Level) Actor() (a Actor, ok bool) {
	if l.actor == nil {
		return Actor{}, false
	}
	return *l.actor, true
}

// Attempt returns the life and goal counters.
func (l *Level) Attempt() AttemptState {
	return l.attempt
}

// Markers returns the positions of claimed exits, in claim order.
func (l *Level) Markers() []platformcore.Vec {
	out := make([]platformcore.Vec, len(l.markers))
	copy(out, l.markers)
	return out
}

// DrainCues returns and clears the cues emitted since the last call.
func (l *Level) DrainCues() []Cue {
	cues := l.cues
	l.cues = nil
	return cues
}

// State returns the controller phase.
func (l *Level) State() State {
	return l.state
}

// InFlight reports the kind of the routine currently running, if any.
func (l *Level) InFlight() (RoutineKind, bool) {
	if l.routine == nil {
		return 0, false
	}
	return l.routine.Kind, true
}

// LastOutcome returns the most recent collision classification.
func (l *Level) LastOutcome() Outcome {
	return l.last
}

func (l *Level) GridSize() float64 { return l.opts.GridSize }
func (l *Level) Cols() int          { return l.cols }
func (l *Level) Rows() int          { return l.rows }

// SetSpeedScale rescales every lane's speed relative to the level file.
func (l *Level) SetSpeedScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	l.opts.SpeedScale = scale
	for _, lane := range l.lanes {
		lane.setSpeedScale(scale)
	}
}
