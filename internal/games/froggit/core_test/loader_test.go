package core_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/froggit/internal/games/froggit/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml is skipped, README.txt and hitboxes.yaml are not levels.
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}

	// Should be sorted by ID
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadLevel01(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Intro" {
		t.Errorf("expected Name 'Intro', got %q", lvl.Name)
	}
	if lvl.Layout.Cols != 5 || lvl.Layout.Rows != 4 {
		t.Errorf("expected 5x4, got %dx%d", lvl.Layout.Cols, lvl.Layout.Rows)
	}
	if lvl.Layout.StartCol != 2 || lvl.Layout.StartRow != 0 {
		t.Errorf("expected start (2,0), got (%d,%d)", lvl.Layout.StartCol, lvl.Layout.StartRow)
	}

	wantTerrain := []core.Terrain{core.TerrainSafe, core.TerrainTraffic, core.TerrainWater, core.TerrainGoal}
	for i, lane := range lvl.Layout.Lanes {
		if lane.Terrain != wantTerrain[i] {
			t.Errorf("lane %d: expected %v, got %v", i, wantTerrain[i], lane.Terrain)
		}
	}
	if lvl.Layout.Lanes[1].Speed != -40 {
		t.Errorf("expected road speed -40, got %v", lvl.Layout.Lanes[1].Speed)
	}

	img, ok := lvl.Hitboxes.Images["log"]
	if !ok || img.Role != core.RolePlatform || img.Width != 3 {
		t.Errorf("unexpected log hitbox %+v", img)
	}

	g := lvl.Start(core.DefaultOptions(), nil)
	if got := g.Attempt().TotalGoals; got != 2 {
		t.Errorf("expected 2 goals, got %d", got)
	}
}

func TestLoaderLoadJSON(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "lvl02" {
		t.Errorf("name should default to the id, got %q", lvl.Name)
	}
	if lvl.Layout.StartCol != -1 {
		t.Errorf("missing start should mean the middle column, got %d", lvl.Layout.StartCol)
	}
	if lvl.Layout.WrapMargin != 2 {
		t.Errorf("expected offscreen 2, got %v", lvl.Layout.WrapMargin)
	}
	obs := lvl.Layout.Lanes[1].Obstacles
	if len(obs) != 1 || obs[0].Position != 1.5 || lvl.Layout.Lanes[1].Speed != 55.5 {
		t.Errorf("unexpected traffic lane %+v", lvl.Layout.Lanes[1])
	}
}

func TestLoaderListIDs(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "lvl01" || ids[1] != "lvl02" {
		t.Errorf("expected [lvl01 lvl02], got %v", ids)
	}
}

func TestLoaderLoadByIDNotFound(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadPathBroken(t *testing.T) {
	_, err := levels.LoadPath(filepath.Join(getTestdataPath(), "broken.yaml"), "")
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestBundledLevels(t *testing.T) {
	loader := levels.Bundled()

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 3 {
		t.Fatalf("expected 3 bundled levels, got %d", len(lvls))
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			g := lvl.Start(core.DefaultOptions(), nil)
			if g.Attempt().TotalGoals == 0 {
				t.Error("bundled level has no goals")
			}
			if _, ok := g.Actor(); !ok {
				t.Error("bundled level has no frog")
			}
			// An idle frog on the start row survives a few seconds.
			for i := 0; i < 180; i++ {
				if res := g.Tick(1.0 / 60); res != core.ResultContinue {
					t.Fatalf("tick %d: idle frog got %v", i, res)
				}
			}
		})
	}
}
