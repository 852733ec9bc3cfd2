package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/froggit/internal/core"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g Game) Model {
	t.Helper()
	return NewModel(g, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60},
		ScreenshotDir: t.TempDir(),
	})
}

func TestModelForwardsKeysForOneTick(t *testing.T) {
	g := &stubGame{}
	var m tea.Model = newTestModel(t, g)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionUp) {
		t.Error("first tick should see the key press")
	}
	if g.frames[1].Has(core.ActionUp) {
		t.Error("input must be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if view := next.View(); view != "" {
		t.Errorf("expected empty view after quit, got %q", view)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize must not reset the game, resets=%d", g.resets)
	}
	mm := next.(Model)
	if mm.screen.Width() != 100 || mm.screen.Height() != 30-helpHeight {
		t.Errorf("unexpected screen %dx%d", mm.screen.Width(), mm.screen.Height())
	}
}

func TestModelViewShowsGameAndHelp(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("game output missing from view")
	}
	if !strings.Contains(view, "quit") {
		t.Error("help bar missing from view")
	}
}

func TestModelHelpKeepsQuitWhenNarrow(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"tiny", 12},
		{"narrow", 30},
		{"wide", 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newTestModel(t, &stubGame{})
			m, _ = m.Update(tea.WindowSizeMsg{Width: tt.width, Height: 10})
			lines := strings.Split(m.View(), "\n")
			if bar := lines[len(lines)-1]; !strings.Contains(bar, "quit") {
				t.Errorf("quit hint missing from help bar %q", bar)
			}
		})
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	path := next.(Model).LastScreenshot()
	if path == "" {
		t.Fatal("no screenshot recorded")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("unexpected screenshot content %q", string(data)[:10])
	}
	if filepath.Dir(path) != m.shotDir {
		t.Errorf("screenshot written to %s, want %s", filepath.Dir(path), m.shotDir)
	}
}

func TestLevelSelectChoosesRow(t *testing.T) {
	var m tea.Model = NewLevelSelectModel([]LevelEntry{
		{ID: "level1", Name: "Meadow", Cols: 10, Rows: 7, Goals: 3},
		{ID: "level2", Name: "Classic", Cols: 12, Rows: 10, Goals: 4},
		{ID: "level3", Name: "Rush Hour", Cols: 12, Rows: 8, Goals: 3},
	}, "level2", 80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should quit the picker")
	}
	if got := m.(LevelSelectModel).Selected(); got != "level3" {
		t.Errorf("expected level3 one below the initial level, got %q", got)
	}
}

func TestLevelSelectQuit(t *testing.T) {
	var m tea.Model = NewLevelSelectModel([]LevelEntry{{ID: "level1"}}, "", 80, 24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if got := m.(LevelSelectModel).Selected(); got != "" {
		t.Errorf("quit should leave no selection, got %q", got)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawTextColored(0, 0, "frog", core.ColorBrightGreen)
	s.DrawText(0, 1, "log")

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "frog") || !strings.Contains(out, "log") {
		t.Errorf("text lost in %q", out)
	}
}
