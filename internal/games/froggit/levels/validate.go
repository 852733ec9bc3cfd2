package levels

import (
	"fmt"

	"github.com/vovakirdan/froggit/internal/games/froggit/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels/formats"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Build validates a parsed level against the hitbox data and converts it to
// a core layout.
// Checks:
//   - Size is positive and the lane count matches the rows
//   - Lane types are known
//   - Every object names a known image
//   - Exits and gaps only appear in hedge lanes
//   - There is at least one exit
//   - The start cell is on the field
func Build(p formats.Level, hb core.Hitboxes) (core.Layout, error) {
	if p.Cols <= 0 || p.Rows <= 0 {
		return core.Layout{}, ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("size %dx%d must be positive", p.Cols, p.Rows),
		}
	}
	if len(p.Lanes) != p.Rows {
		return core.Layout{}, ValidationError{
			Code:    "LANE_COUNT",
			Message: fmt.Sprintf("level has %d rows but %d lanes", p.Rows, len(p.Lanes)),
		}
	}
	if p.WrapMargin < 0 {
		return core.Layout{}, ValidationError{
			Code:    "INVALID_OFFSCREEN",
			Message: fmt.Sprintf("offscreen margin %v must not be negative", p.WrapMargin),
		}
	}

	layout := core.Layout{
		Cols:       p.Cols,
		Rows:       p.Rows,
		WrapMargin: p.WrapMargin,
		StartCol:   -1,
		Lanes:      make([]core.LaneSpec, 0, len(p.Lanes)),
	}

	exits := 0
	for row, l := range p.Lanes {
		terrain, ok := core.ParseTerrain(l.Type)
		if !ok {
			return core.Layout{}, ValidationError{
				Code:    "UNKNOWN_LANE",
				Message: fmt.Sprintf("lane %d has unknown type %q", row, l.Type),
			}
		}

		for _, o := range l.Objects {
			img, ok := hb.Images[o.Image]
			if !ok {
				return core.Layout{}, ValidationError{
					Code:    "UNKNOWN_IMAGE",
					Message: fmt.Sprintf("lane %d uses image %q with no hitbox", row, o.Image),
				}
			}
			role := img.Role
			if role == core.RoleUnset {
				role = core.DefaultRole(terrain)
			}
			if (role == core.RoleExitSlot || role == core.RoleExitOpen) && terrain != core.TerrainGoal {
				return core.Layout{}, ValidationError{
					Code:    "MISPLACED_EXIT",
					Message: fmt.Sprintf("lane %d is %s but holds %s exit %q", row, terrain, role, o.Image),
				}
			}
			if role == core.RoleExitSlot {
				exits++
			}
		}

		layout.Lanes = append(layout.Lanes, core.LaneSpec{
			Terrain:   terrain,
			Speed:     l.Speed,
			Obstacles: l.Objects,
		})
	}

	if exits == 0 {
		return core.Layout{}, ValidationError{
			Code:    "NO_EXITS",
			Message: "level has no exit to reach",
		}
	}

	if p.HasStart {
		if p.StartCol < 0 || p.StartCol >= p.Cols || p.StartRow < 0 || p.StartRow >= p.Rows {
			return core.Layout{}, ValidationError{
				Code:    "INVALID_START",
				Message: fmt.Sprintf("start (%d,%d) is outside the %dx%d field", p.StartCol, p.StartRow, p.Cols, p.Rows),
			}
		}
		layout.StartCol, layout.StartRow = p.StartCol, p.StartRow
	}

	return layout, nil
}
