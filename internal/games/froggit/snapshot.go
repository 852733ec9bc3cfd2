package froggit

import "math"

// Snapshot captures the observable game state for determinism checks and
// replay comparison. Positions are rounded to whole world units.
type Snapshot struct {
	Tick     uint64
	State    string
	Score    int
	Lives    int
	Goals    int
	Attempts int

	// Frog: X, Y, Facing, Alive, InMotion, Frame. Empty between attempts.
	Frog []int

	// Obstacles, lane by lane: X, Y, Claimed.
	ObstacleData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(g.ticks), //#nosec G115 -- tick count is always positive
		State:    g.state,
		Score:    g.score,
		Attempts: g.attempts,
	}
	if g.play == nil {
		return snap
	}

	at := g.play.Attempt()
	snap.Lives = at.LivesRemaining
	snap.Goals = at.GoalsClaimed

	if a, ok := g.play.Actor(); ok {
		snap.Frog = []int{
			round(a.Pos.X), round(a.Pos.Y), int(a.Facing),
			boolInt(a.Alive), boolInt(a.InMotion), a.Frame,
		}
	}

	for _, lane := range g.play.Lanes() {
		for _, o := range lane.Obstacles() {
			snap.ObstacleData = append(snap.ObstacleData, round(o.Pos.X), round(o.Pos.Y), boolInt(o.Claimed()))
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Goals)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Attempts) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Frog {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func round(v float64) int {
	return int(math.Round(v))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
