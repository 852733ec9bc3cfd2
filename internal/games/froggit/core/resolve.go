package core

import (
	platformcore "github.com/vovakirdan/froggit/internal/core"
)

// residentRule classifies a frog that is standing still in lane li.
// Water rules mark the supporting platform.
type residentRule func(lane *Lane, li int, a *Actor) Outcome

// probeRule classifies a hop before it starts. ghost is the frog placed at
// the destination cell.
type probeRule func(lane *Lane, li int, ghost *Actor, dir Dir) Outcome

var residentRules = [...]residentRule{
	TerrainSafe:    residentSafe,
	TerrainTraffic: residentTraffic,
	TerrainWater:   residentWater,
	TerrainGoal:    residentSafe,
}

// Water is decided on landing, since platforms keep moving during the hop.
var probeRules = [...]probeRule{
	TerrainSafe:    probeContinue,
	TerrainTraffic: probeTraffic,
	TerrainWater:   probeContinue,
	TerrainGoal:    probeGoal,
}

func residentSafe(_ *Lane, li int, _ *Actor) Outcome {
	return Outcome{Kind: OutcomeContinue, Lane: li}
}

func residentTraffic(lane *Lane, li int, a *Actor) Outcome {
	if hazardAt(lane, a.Box()) {
		return Outcome{Kind: OutcomeFatal, Lane: li}
	}
	return Outcome{Kind: OutcomeContinue, Lane: li}
}

func residentWater(lane *Lane, li int, a *Actor) Outcome {
	i := lane.platformUnder(a.Center())
	if i < 0 {
		return Outcome{Kind: OutcomeFatal, Lane: li}
	}
	lane.obstacles[i].supporting = true
	return Outcome{Kind: OutcomeContinue, Lane: li}
}

func probeContinue(_ *Lane, li int, _ *Actor, _ Dir) Outcome {
	return Outcome{Kind: OutcomeContinue, Lane: li}
}

func probeTraffic(lane *Lane, li int, ghost *Actor, _ Dir) Outcome {
	if hazardAt(lane, ghost.Box()) {
		return Outcome{Kind: OutcomeFatal, Lane: li}
	}
	return Outcome{Kind: OutcomeContinue, Lane: li}
}

// probeGoal decides hops into a hedge lane by the destination cell.
// A slot covering the cell wins over an open gap, so a claimed slot stays
// solid even where a gap overlaps it. Only a northward hop claims a slot.
func probeGoal(lane *Lane, li int, ghost *Actor, dir Dir) Outcome {
	c := ghost.Center()
	for i, o := range lane.obstacles {
		if o.Role != RoleExitSlot || !o.Bounds().Contains(c) {
			continue
		}
		if o.claimed || dir != DirNorth {
			return Outcome{Kind: OutcomeBlocked, Lane: li, Slot: i}
		}
		return Outcome{Kind: OutcomeReached, Lane: li, Slot: i}
	}
	for _, o := range lane.obstacles {
		if o.Role == RoleExitOpen && o.Bounds().Contains(c) {
			return Outcome{Kind: OutcomeContinue, Lane: li}
		}
	}
	return Outcome{Kind: OutcomeBlocked, Lane: li}
}

func hazardAt(lane *Lane, box platformcore.Box) bool {
	for _, o := range lane.obstacles {
		if o.Role == RoleHazard && o.Box().Intersects(box) {
			return true
		}
	}
	return false
}

// laneAt returns the index of the lane whose background contains p, or -1.
func laneAt(lanes []*Lane, p platformcore.Vec) int {
	for i, l := range lanes {
		if l.Box().Contains(p) {
			return i
		}
	}
	return -1
}

// resolveResident classifies the frog where it stands. A frog whose centre
// is outside every lane was carried off the field and dies.
func resolveResident(lanes []*Lane, a *Actor) Outcome {
	li := laneAt(lanes, a.Center())
	if li < 0 {
		return Outcome{Kind: OutcomeFatal, Lane: -1}
	}
	lane := lanes[li]
	return residentRules[lane.terrain](lane, li, a)
}

// probeMove classifies a hop of a to target before it starts.
func probeMove(lanes []*Lane, a *Actor, target platformcore.Vec, dir Dir) Outcome {
	ghost := *a
	ghost.Pos = target
	li := laneAt(lanes, ghost.Center())
	if li < 0 {
		return Outcome{Kind: OutcomeBlocked, Lane: -1}
	}
	lane := lanes[li]
	return probeRules[lane.terrain](lane, li, &ghost, dir)
}
