// Package froggit adapts the lane-crossing simulation to the platform's
// tick-stepped game contract: title and pause screens, scoring, difficulty
// and drawing into the cell screen.
package froggit

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/froggit/internal/config"
	platformcore "github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// Application states
const (
	StateTitle    = "title"    // Waiting for the first key
	StateActive   = "active"   // Frog in play
	StatePaused   = "paused"   // Attempt over, waiting to continue
	StateComplete = "complete" // Level won or all lives lost
)

// Scoring
const (
	PointsPerRow  = 10
	PointsPerExit = 50
	WinBonus      = 1000
)

// Options configure a Game.
type Options struct {
	Config config.FroggitConfig
	Logger *log.Logger // Optional
}

// Game runs one Froggit level inside the platform loop.
type Game struct {
	level  levels.Level
	cfg    config.FroggitConfig
	logger *log.Logger

	play       *core.Level
	input      frameInput
	difficulty *config.DifficultyManager
	runtime    platformcore.RuntimeConfig

	state    string
	held     bool // Manual pause while active
	won      bool
	homeLast bool // The last attempt ended in an exit
	score    int
	furthest int // Highest row reached in the current attempt
	ticks    int
	attempts int
}

// New creates a game for the given level.
func New(lvl levels.Level, opts Options) *Game {
	return &Game{
		level:  lvl,
		cfg:    opts.Config,
		logger: opts.Logger,
	}
}

// ID returns the level id.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.level.Name == "" {
		return "Froggit"
	}
	return "Froggit: " + g.level.Name
}

// Reset initializes or restarts the level.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.input = frameInput{}
	g.play = core.Start(g.level.Layout, g.level.Hitboxes, g.coreOptions(), &g.input)
	g.play.SetSpeedScale(g.difficulty.Speed(0, 0))

	g.state = StateTitle
	g.held = false
	g.won = false
	g.homeLast = false
	g.score = 0
	g.ticks = 0
	g.attempts = 1
	g.furthest = g.actorRow()

	g.debug("level reset", "level", g.level.ID, "lives", g.play.Attempt().LivesRemaining)
}

func (g *Game) coreOptions() core.Options {
	return core.Options{
		GridSize:      g.cfg.Grid.Size,
		SlideDuration: g.cfg.Timing.SlideDuration,
		DeathDuration: g.cfg.Timing.DeathDuration,
		Lives:         g.cfg.Gameplay.Lives,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	switch g.state {
	case StateTitle:
		if in.Has(platformcore.ActionConfirm) || hasDirection(in) {
			g.state = StateActive
		}
		return platformcore.StepResult{State: g.State()}

	case StatePaused:
		if in.Has(platformcore.ActionConfirm) {
			g.continueAttempt()
		}
		return platformcore.StepResult{State: g.State()}

	case StateComplete:
		if in.Has(platformcore.ActionRestart) || in.Has(platformcore.ActionConfirm) {
			g.Reset(g.runtime)
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.held = !g.held
	}
	if g.held {
		return platformcore.StepResult{State: g.State()}
	}

	g.ticks++
	g.input.frame = in
	res := g.play.Tick(g.runtime.TickDelta())
	g.input.frame = platformcore.InputFrame{}

	g.handleCues()
	g.scoreProgress()
	g.play.SetSpeedScale(g.difficulty.Speed(g.play.Attempt().GoalsClaimed, g.ticks))

	switch res {
	case core.ResultAttemptOver:
		g.state = StatePaused
		g.debug("attempt over", "attempt", g.attempts, "lives", g.play.Attempt().LivesRemaining)
	case core.ResultWin:
		g.score += WinBonus
		g.won = true
		g.state = StateComplete
		g.info("level won", "level", g.level.ID, "score", g.score, "attempts", g.attempts)
	case core.ResultLoss:
		g.state = StateComplete
		g.info("level lost", "level", g.level.ID, "score", g.score, "goals", g.play.Attempt().GoalsClaimed)
	}

	return platformcore.StepResult{State: g.State()}
}

// continueAttempt puts a fresh frog on the start cell.
func (g *Game) continueAttempt() {
	if !g.play.Respawn() {
		return
	}
	g.attempts++
	g.furthest = g.actorRow()
	g.state = StateActive
}

// handleCues scores exits and logs the cue stream. The frog leaves the field
// when it reaches an exit, so the exit row is scored here.
func (g *Game) handleCues() {
	for _, c := range g.play.DrainCues() {
		switch c.Kind {
		case core.CueReachedExit:
			g.scoreRow(c.Row)
			g.score += PointsPerExit
			g.homeLast = true
		case core.CueDied:
			g.homeLast = false
		}
		g.debug("cue", "kind", c.Kind, "dir", c.Dir, "row", c.Row)
	}
}

// scoreProgress awards points for every row the frog has not reached
// before in this attempt.
func (g *Game) scoreProgress() {
	a, ok := g.play.Actor()
	if !ok || !a.Alive || a.InMotion {
		return
	}
	_, row := a.Cell()
	g.scoreRow(row)
}

func (g *Game) scoreRow(row int) {
	if row > g.furthest {
		g.score += (row - g.furthest) * PointsPerRow
		g.furthest = row
	}
}

func (g *Game) actorRow() int {
	a, ok := g.play.Actor()
	if !ok {
		return 0
	}
	_, row := a.Cell()
	return row
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.state == StateComplete,
		Won:      g.won,
		Paused:   g.held || g.state == StatePaused,
	}
}

// Phase returns the application state name.
func (g *Game) Phase() string {
	return g.state
}

// Level returns the running simulation for inspection.
func (g *Game) Level() *core.Level {
	return g.play
}

func (g *Game) debug(msg string, kv ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, kv...)
	}
}

func (g *Game) info(msg string, kv ...any) {
	if g.logger != nil {
		g.logger.Info(msg, kv...)
	}
}

// frameInput answers the simulation's direction queries from the actions
// of the current tick.
type frameInput struct {
	frame platformcore.InputFrame
}

func (f *frameInput) Pressed(d core.Dir) bool {
	return f.frame.Has(dirAction(d))
}

func dirAction(d core.Dir) platformcore.Action {
	switch d {
	case core.DirNorth:
		return platformcore.ActionUp
	case core.DirSouth:
		return platformcore.ActionDown
	case core.DirEast:
		return platformcore.ActionRight
	case core.DirWest:
		return platformcore.ActionLeft
	default:
		return platformcore.ActionNone
	}
}

func hasDirection(in platformcore.InputFrame) bool {
	return in.Has(platformcore.ActionUp) || in.Has(platformcore.ActionDown) ||
		in.Has(platformcore.ActionLeft) || in.Has(platformcore.ActionRight)
}
