package core

// Layout describes one level as read from a level file. Lanes are listed
// bottom to top; lane i occupies row i.
type Layout struct {
	Cols       int
	Rows       int
	WrapMargin float64 // Cells an obstacle may travel past the edge before wrapping
	StartCol   int     // Negative means the middle column
	StartRow   int
	Lanes      []LaneSpec
}

// LaneSpec describes one lane of a layout.
type LaneSpec struct {
	Terrain   Terrain
	Speed     float64 // World units per second, sign gives the direction
	Obstacles []ObstacleSpec
}

// ObstacleSpec places an image in a lane. Position is the column of the
// image's left edge and may be fractional.
type ObstacleSpec struct {
	Image    string
	Position float64
}

// HitRect is a collision rectangle in cell units relative to the lower-left
// corner of an image. The zero value means "the whole image".
type HitRect struct {
	X0, Y0, X1, Y1 float64
}

// IsZero reports whether the rectangle is unset.
func (h HitRect) IsZero() bool {
	return h == HitRect{}
}

// ImageSpec is the hitbox data for one obstacle image.
type ImageSpec struct {
	Role   Role
	Width  float64 // Cells; zero means one cell
	Hitbox HitRect
}

// Hitboxes maps image names to their collision data, plus the frog's box.
type Hitboxes struct {
	Images map[string]ImageSpec
	Frog   HitRect
}

// Options are the tunables a level is started with.
type Options struct {
	GridSize      float64 // World units per cell
	SlideDuration float64 // Seconds for one hop
	DeathDuration float64 // Seconds for the death sequence
	Lives         int
	SpeedScale    float64 // Multiplier applied to every lane speed; zero means 1
}

// DefaultOptions returns the classic tuning.
func DefaultOptions() Options {
	return Options{
		GridSize:      64,
		SlideDuration: 0.25,
		DeathDuration: 0.8,
		Lives:         3,
		SpeedScale:    1,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GridSize <= 0 {
		o.GridSize = d.GridSize
	}
	if o.SlideDuration <= 0 {
		o.SlideDuration = d.SlideDuration
	}
	if o.DeathDuration <= 0 {
		o.DeathDuration = d.DeathDuration
	}
	if o.Lives <= 0 {
		o.Lives = d.Lives
	}
	if o.SpeedScale <= 0 {
		o.SpeedScale = d.SpeedScale
	}
	return o
}
