// Package core provides the simulation for the Froggit lane-crossing game:
// lane motion, grid-aligned hops, collision resolution and attempt bookkeeping.
// This package is UI-agnostic and deterministic; it never draws, plays sound
// or reads files.
package core

import "strings"

// Dir is the direction the frog faces or hops in.
type Dir uint8

const (
	DirNorth Dir = iota
	DirSouth
	DirEast
	DirWest
)

// inputPriority is the order in which held directions are honored.
// Only the first pressed direction is used in a tick.
var inputPriority = [...]Dir{DirEast, DirWest, DirNorth, DirSouth}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirSouth:
		return "South"
	case DirEast:
		return "East"
	case DirWest:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dcol, drow) offset for one hop in this direction.
// Rows grow upward: North increases the row.
func (d Dir) Delta() (dc, dr int) {
	switch d {
	case DirNorth:
		return 0, 1
	case DirSouth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Terrain classifies a lane by how it treats the frog.
type Terrain uint8

const (
	TerrainSafe    Terrain = iota // grass: nothing can hurt the frog
	TerrainTraffic                // road: touching a hazard is fatal
	TerrainWater                  // water: fatal unless standing on a platform
	TerrainGoal                   // hedge: exit slots and open gaps
)

// String returns the level-file name of the terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainSafe:
		return "grass"
	case TerrainTraffic:
		return "road"
	case TerrainWater:
		return "water"
	case TerrainGoal:
		return "hedge"
	default:
		return "unknown"
	}
}

// ParseTerrain converts a level-file lane type to a Terrain.
// Both the classic names (grass, road, water, hedge) and the descriptive ones
// (safe, traffic, water, goal) are accepted.
func ParseTerrain(s string) (Terrain, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grass", "safe":
		return TerrainSafe, true
	case "road", "traffic":
		return TerrainTraffic, true
	case "water":
		return TerrainWater, true
	case "hedge", "goal":
		return TerrainGoal, true
	default:
		return TerrainSafe, false
	}
}

// Role tags what an obstacle means to the frog. It is fixed when the level
// is built so resolution never inspects image names.
type Role uint8

const (
	RoleUnset    Role = iota // take the lane's default role
	RoleDecor                // drawn only
	RoleHazard               // kills on contact
	RolePlatform             // carries the frog across water
	RoleExitOpen             // gap in the hedge the frog may stand in
	RoleExitSlot             // exit the frog must claim
)

// String returns the level-file name of the role.
func (r Role) String() string {
	switch r {
	case RoleUnset:
		return "unset"
	case RoleDecor:
		return "decor"
	case RoleHazard:
		return "hazard"
	case RolePlatform:
		return "platform"
	case RoleExitOpen:
		return "open"
	case RoleExitSlot:
		return "exit"
	default:
		return "unknown"
	}
}

// ParseRole converts a hitbox-file role name to a Role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RoleUnset, true
	case "decor":
		return RoleDecor, true
	case "hazard":
		return RoleHazard, true
	case "platform":
		return RolePlatform, true
	case "open":
		return RoleExitOpen, true
	case "exit", "slot":
		return RoleExitSlot, true
	default:
		return RoleUnset, false
	}
}

// DefaultRole is the role an obstacle gets when its image does not name one.
func DefaultRole(t Terrain) Role {
	switch t {
	case TerrainTraffic:
		return RoleHazard
	case TerrainWater:
		return RolePlatform
	case TerrainGoal:
		return RoleExitSlot
	default:
		return RoleDecor
	}
}

// OutcomeKind classifies a resolved move.
type OutcomeKind uint8

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeFatal
	OutcomeReached
	OutcomeBlocked
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "Continue"
	case OutcomeFatal:
		return "Fatal"
	case OutcomeReached:
		return "Reached"
	case OutcomeBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a collision query. Slot indexes the goal lane's
// obstacles and is only meaningful for OutcomeReached.
type Outcome struct {
	Kind OutcomeKind
	Lane int
	Slot int
}

// Result is what a tick reports to the enclosing application.
type Result uint8

const (
	ResultContinue    Result = iota // keep playing
	ResultAttemptOver               // this life ended (death or exit reached)
	ResultLoss                      // all lives exhausted
	ResultWin                       // every exit claimed
)

// String returns the string representation of a tick result.
func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "Continue"
	case ResultAttemptOver:
		return "AttemptOver"
	case ResultLoss:
		return "Loss"
	case ResultWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Code returns the classic numeric status: 0 for a finished attempt, -1 for a
// loss and 1 for a win. ok is false while the game simply continues.
func (r Result) Code() (code int, ok bool) {
	switch r {
	case ResultAttemptOver:
		return 0, true
	case ResultLoss:
		return -1, true
	case ResultWin:
		return 1, true
	default:
		return 0, false
	}
}

// CueKind identifies a discrete event for audio or visual feedback.
type CueKind uint8

const (
	CueSlideStarted CueKind = iota
	CueReachedExit
	CueDied
)

// String returns the string representation of a cue kind.
func (k CueKind) String() string {
	switch k {
	case CueSlideStarted:
		return "slideStarted"
	case CueReachedExit:
		return "reachedExit"
	case CueDied:
		return "died"
	default:
		return "unknown"
	}
}

// Cue is a discrete event emitted by the level. Row is the frog's row when
// the cue fired (the destination row for slides).
type Cue struct {
	Kind CueKind
	Dir  Dir
	Row  int
	Slot int
}
