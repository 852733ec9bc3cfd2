// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/froggit/internal/games/froggit/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the level file structure. JSON level files use the
// same keys and go through the same decoder.
type YAMLLevel struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Size      []int      `yaml:"size"`      // [cols, rows]
	Offscreen float64    `yaml:"offscreen"` // Wrap margin in cells
	Start     []int      `yaml:"start,omitempty"`
	Lanes     []YAMLLane `yaml:"lanes"`
}

// YAMLLane represents one lane, bottom lane first.
type YAMLLane struct {
	Type    string       `yaml:"type"`
	Speed   float64      `yaml:"speed,omitempty"`
	Objects []YAMLObject `yaml:"objects,omitempty"`
}

// YAMLObject places an image in a lane.
type YAMLObject struct {
	Type     string  `yaml:"type"`
	Position float64 `yaml:"position"`
}

// YAMLHitboxes represents the hitbox file structure.
type YAMLHitboxes struct {
	Images map[string]YAMLImage `yaml:"images"`
	Frog   YAMLImage            `yaml:"frog"`
}

// YAMLImage is the collision data for one image.
type YAMLImage struct {
	Role   string    `yaml:"role,omitempty"`
	Width  float64   `yaml:"width,omitempty"`
	Hitbox []float64 `yaml:"hitbox,omitempty"` // [x0, y0, x1, y1]
}

// Lane is a parsed lane whose type has not been checked yet.
type Lane struct {
	Type    string
	Speed   float64
	Objects []core.ObstacleSpec
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID         string
	Name       string
	Cols       int
	Rows       int
	WrapMargin float64
	HasStart   bool
	StartCol   int
	StartRow   int
	Lanes      []Lane
}

// ParseYAML parses a level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Size) != 2 {
		return Level{}, fmt.Errorf("size must be [cols, rows], got %v", yl.Size)
	}

	level := Level{
		ID:         yl.ID,
		Name:       yl.Name,
		Cols:       yl.Size[0],
		Rows:       yl.Size[1],
		WrapMargin: yl.Offscreen,
		Lanes:      make([]Lane, 0, len(yl.Lanes)),
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	switch len(yl.Start) {
	case 0:
	case 2:
		level.HasStart = true
		level.StartCol, level.StartRow = yl.Start[0], yl.Start[1]
	default:
		return Level{}, fmt.Errorf("start must be [col, row], got %v", yl.Start)
	}

	for _, l := range yl.Lanes {
		lane := Lane{Type: l.Type, Speed: l.Speed}
		for _, o := range l.Objects {
			lane.Objects = append(lane.Objects, core.ObstacleSpec{Image: o.Type, Position: o.Position})
		}
		level.Lanes = append(level.Lanes, lane)
	}

	return level, nil
}

// ParseHitboxes parses a hitbox file.
func ParseHitboxes(data []byte) (core.Hitboxes, error) {
	var yh YAMLHitboxes
	if err := yaml.Unmarshal(data, &yh); err != nil {
		return core.Hitboxes{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	hb := core.Hitboxes{Images: make(map[string]core.ImageSpec, len(yh.Images))}
	for name, img := range yh.Images {
		role, ok := core.ParseRole(img.Role)
		if !ok {
			return core.Hitboxes{}, fmt.Errorf("image %s: unknown role %q", name, img.Role)
		}
		rect, err := parseRect(img.Hitbox)
		if err != nil {
			return core.Hitboxes{}, fmt.Errorf("image %s: %w", name, err)
		}
		hb.Images[name] = core.ImageSpec{Role: role, Width: img.Width, Hitbox: rect}
	}

	rect, err := parseRect(yh.Frog.Hitbox)
	if err != nil {
		return core.Hitboxes{}, fmt.Errorf("frog: %w", err)
	}
	hb.Frog = rect
	return hb, nil
}

func parseRect(v []float64) (core.HitRect, error) {
	switch len(v) {
	case 0:
		return core.HitRect{}, nil
	case 4:
		r := core.HitRect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}
		if r.X1 <= r.X0 || r.Y1 <= r.Y0 {
			return core.HitRect{}, fmt.Errorf("hitbox %v is empty", v)
		}
		return r, nil
	default:
		return core.HitRect{}, fmt.Errorf("hitbox must be [x0, y0, x1, y1], got %v", v)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
