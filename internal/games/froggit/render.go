package froggit

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/core"
)

// Layout constants
const (
	hudHeight = 2 // Status line + separator
	minCellW  = 2
	minCellH  = 1
)

// Glyphs
const (
	GlyphGrass   = '░'
	GlyphRoad    = '·'
	GlyphWater   = '≈'
	GlyphHedge   = '▓'
	GlyphHazard  = '█'
	GlyphLog     = '▒'
	GlyphSlot    = ' '
	GlyphMarker  = '♣'
	GlyphDecor   = '*'
	GlyphFrogPad = 'o'
)

var facingGlyphs = map[core.Dir]rune{
	core.DirNorth: '▲',
	core.DirSouth: '▼',
	core.DirEast:  '►',
	core.DirWest:  '◄',
}

var deathGlyphs = [core.DeathFrames]rune{'X', 'x', '*', '+', '*', '+', '.', ' '}

// view maps world units onto screen cells for one frame.
type view struct {
	cellW, cellH int
	offX, offY   int
	grid         float64
	rows         int
	cols         int
}

// column converts a world x to a screen column.
func (v view) column(x float64) int {
	return v.offX + int(math.Floor(x/v.grid*float64(v.cellW)))
}

// line converts a world y to the screen line just below it. World y grows
// upward, screen lines grow downward.
func (v view) line(y float64) int {
	fromTop := float64(v.rows)*v.grid - y
	return v.offY + int(math.Floor(fromTop/v.grid*float64(v.cellH)))
}

// fill paints the screen area covered by a world box, clipped to the field.
func (v view) fill(dst *platformcore.Screen, b platformcore.Box, r rune, c platformcore.Color) {
	x0 := max(v.column(b.Min.X), v.offX)
	x1 := min(v.column(b.Max.X), v.offX+v.cols*v.cellW)
	y0 := max(v.line(b.Max.Y), v.offY)
	y1 := min(v.line(b.Min.Y), v.offY+v.rows*v.cellH)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// layoutView picks the largest configured cell size that fits the screen.
func (g *Game) layoutView(w, h int) (view, bool) {
	cols, rows := g.play.Cols(), g.play.Rows()
	cellW := max(g.cfg.Render.CellW, minCellW)
	cellH := max(g.cfg.Render.CellH, minCellH)

	for {
		needW := cols * cellW
		needH := rows*cellH + hudHeight
		if needW <= w && needH <= h {
			break
		}
		if cellW == minCellW && cellH == minCellH {
			return view{}, false
		}
		cellW = max(cellW-1, minCellW)
		cellH = max(cellH-1, minCellH)
	}

	v := view{
		cellW: cellW,
		cellH: cellH,
		grid:  g.play.GridSize(),
		rows:  rows,
		cols:  cols,
	}
	v.offX = (w - cols*cellW) / 2
	v.offY = hudHeight + (h-hudHeight-rows*cellH)/2
	return v, true
}

// MinScreenSize returns the smallest terminal size that can show the level.
func (g *Game) MinScreenSize() (w, h int) {
	return g.play.Cols() * minCellW, g.play.Rows()*minCellH + hudHeight
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.play == nil {
		return
	}

	v, ok := g.layoutView(dst.Width(), dst.Height())
	if !ok {
		w, h := g.MinScreenSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderHUD(dst)
	g.renderLanes(dst, v)
	g.renderMarkers(dst, v)
	g.renderActor(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	at := g.play.Attempt()
	left := fmt.Sprintf(" %s", g.Title())
	right := fmt.Sprintf("Score: %d  Lives: %d  Home: %d/%d ",
		g.score, at.LivesRemaining, at.GoalsClaimed, at.TotalGoals)

	dst.DrawTextColored(0, 0, left, platformcore.ColorBrightGreen)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, platformcore.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

// renderLanes paints terrain and then the lane's obstacles on top.
func (g *Game) renderLanes(dst *platformcore.Screen, v view) {
	for _, lane := range g.play.Lanes() {
		r, c := terrainGlyph(lane.Terrain())
		v.fill(dst, lane.Box(), r, c)

		for _, o := range lane.Obstacles() {
			r, c, draw := obstacleGlyph(o)
			if draw {
				v.fill(dst, o.Bounds(), r, c)
			}
		}
	}
}

func terrainGlyph(t core.Terrain) (rune, platformcore.Color) {
	switch t {
	case core.TerrainTraffic:
		return GlyphRoad, platformcore.ColorGray
	case core.TerrainWater:
		return GlyphWater, platformcore.ColorBlue
	case core.TerrainGoal:
		return GlyphHedge, platformcore.ColorGreen
	default:
		return GlyphGrass, platformcore.ColorGreen
	}
}

func obstacleGlyph(o core.Obstacle) (rune, platformcore.Color, bool) {
	switch o.Role {
	case core.RoleHazard:
		if o.Size.X > o.Size.Y {
			return GlyphHazard, platformcore.ColorYellow, true
		}
		return GlyphHazard, platformcore.ColorRed, true
	case core.RolePlatform:
		return GlyphLog, platformcore.ColorBrown, true
	case core.RoleExitSlot:
		return GlyphSlot, platformcore.ColorDefault, true
	case core.RoleExitOpen:
		return GlyphGrass, platformcore.ColorGreen, true
	case core.RoleDecor:
		return GlyphDecor, platformcore.ColorMagenta, true
	default:
		return 0, platformcore.ColorDefault, false
	}
}

// renderMarkers draws a frog in every claimed exit.
func (g *Game) renderMarkers(dst *platformcore.Screen, v view) {
	for _, m := range g.play.Markers() {
		x := v.column(m.X + v.grid/2)
		y := v.line(m.Y + v.grid/2)
		dst.SetColored(x, y, GlyphMarker, platformcore.ColorBrightGreen)
	}
}

// renderActor draws the frog with its facing, hop frame or death frame.
func (g *Game) renderActor(dst *platformcore.Screen, v view) {
	a, ok := g.play.Actor()
	if !ok {
		return
	}

	body := platformcore.NewBox(a.Pos.X, a.Pos.Y, v.grid, v.grid)
	if !a.Alive {
		frame := platformcore.Clamp(a.Frame, 0, core.DeathFrames-1)
		v.fill(dst, body, deathGlyphs[frame], platformcore.ColorBrightRed)
		return
	}

	color := platformcore.ColorBrightGreen
	if a.InMotion && a.Frame >= core.SlideFrames/2 {
		color = platformcore.ColorBrightYellow
	}
	v.fill(dst, body, GlyphFrogPad, color)

	c := a.Center()
	dst.SetColored(v.column(c.X), v.line(c.Y), facingGlyphs[a.Facing], color)
}

// renderOverlay draws the title, pause and end-of-level boxes.
func (g *Game) renderOverlay(dst *platformcore.Screen) {
	switch {
	case g.state == StateTitle:
		g.drawMessage(dst, "FROGGIT", "Get every frog home", "Press Enter or an arrow to start")
	case g.state == StateComplete && g.won:
		g.drawMessage(dst, "You Win!", fmt.Sprintf("Score: %d", g.score), "Press R to play again")
	case g.state == StateComplete:
		g.drawMessage(dst, "Game Over", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.state == StatePaused && g.homeLast:
		g.drawMessage(dst, "Home safe!", fmt.Sprintf("%d left to go", g.goalsLeft()), "Press Enter for the next frog")
	case g.state == StatePaused:
		g.drawMessage(dst, "Splat!", fmt.Sprintf("Lives left: %d", g.play.Attempt().LivesRemaining), "Press Enter to try again")
	case g.held:
		g.drawMessage(dst, "Paused", "", "Press P to continue")
	}
}

func (g *Game) goalsLeft() int {
	at := g.play.Attempt()
	return at.TotalGoals - at.GoalsClaimed
}

// drawMessage draws a bordered box with up to three centered lines.
func (g *Game) drawMessage(dst *platformcore.Screen, title, line, hint string) {
	width := max(len([]rune(title)), len([]rune(line)), len([]rune(hint))) + 4
	box := platformcore.NewRect((dst.Width()-width)/2, dst.Height()/2-3, width, 7)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, box, 1, title, platformcore.ColorBrightYellow)
	drawCentered(dst, box, 3, line, platformcore.ColorWhite)
	drawCentered(dst, box, 5, hint, platformcore.ColorGray)
}

func drawCentered(dst *platformcore.Screen, box platformcore.Rect, dy int, text string, c platformcore.Color) {
	if text == "" {
		return
	}
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, box.Y+dy, text, c)
}
