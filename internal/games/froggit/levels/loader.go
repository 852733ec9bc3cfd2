// Package levels provides level loading functionality for Froggit.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/froggit/internal/games/froggit/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels/formats"
)

// HitboxFile is the name of the hitbox file inside a level directory.
const HitboxFile = "hitboxes.yaml"

//go:embed data/*.yaml
var bundled embed.FS

// Level represents a complete, validated level definition.
type Level struct {
	ID       string
	Name     string
	Layout   core.Layout
	Hitboxes core.Hitboxes
	FilePath string
}

// Start begins a playthrough of the level.
func (l *Level) Start(opts core.Options, input core.Input) *core.Level {
	return core.Start(l.Layout, l.Hitboxes, opts, input)
}

// Goals returns the number of exit slots the level has.
func (l *Level) Goals() int {
	return l.Start(core.DefaultOptions(), nil).Attempt().TotalGoals
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string      // Directory the loader was opened on, for messages
	Logger *log.Logger // Optional; skipped files are reported at warn level
}

// NewLoader creates a loader over a level directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// Bundled returns a loader over the levels compiled into the binary.
func Bundled() *Loader {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(fmt.Sprintf("bundled levels: %v", err))
	}
	return &Loader{FS: sub, Root: "bundled"}
}

// Hitboxes loads the hitbox file of the level directory. Directories without
// one fall back to the bundled hitboxes.
func (l *Loader) Hitboxes() (core.Hitboxes, error) {
	data, err := fs.ReadFile(l.FS, HitboxFile)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = bundled.ReadFile("data/" + HitboxFile)
	}
	if err != nil {
		return core.Hitboxes{}, fmt.Errorf("reading hitboxes in %s: %w", l.Root, err)
	}

	hb, err := formats.ParseHitboxes(data)
	if err != nil {
		return core.Hitboxes{}, fmt.Errorf("parsing hitboxes in %s: %w", l.Root, err)
	}
	return hb, nil
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	hb, err := l.Hitboxes()
	if err != nil {
		return nil, err
	}

	var levels []Level
	err = fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Base(p) == HitboxFile {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.load(p, hb)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", p, "error", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file from the loader's file
// system using the loader's hitboxes.
func (l *Loader) LoadFile(p string) (Level, error) {
	hb, err := l.Hitboxes()
	if err != nil {
		return Level{}, err
	}
	return l.load(p, hb)
}

func (l *Loader) load(p string, hb core.Hitboxes) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, p, hb)
}

// LoadPath loads and validates a level file anywhere on disk. An empty
// hitboxPath uses the hitbox file next to the level, then the bundled one.
func LoadPath(levelPath, hitboxPath string) (Level, error) {
	var hb core.Hitboxes
	var err error
	if hitboxPath != "" {
		hb, err = readHitboxes(hitboxPath)
	} else {
		hb, err = NewLoader(filepath.Dir(levelPath)).Hitboxes()
	}
	if err != nil {
		return Level{}, err
	}

	data, err := os.ReadFile(levelPath)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", levelPath, err)
	}
	return parse(data, levelPath, hb)
}

func readHitboxes(p string) (core.Hitboxes, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return core.Hitboxes{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	hb, err := formats.ParseHitboxes(data)
	if err != nil {
		return core.Hitboxes{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return hb, nil
}

func parse(data []byte, p string, hb core.Hitboxes) (Level, error) {
	ext := strings.ToLower(filepath.Ext(p))
	if !isSupportedExtension(ext) {
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if parsed.Name == "" {
			parsed.Name = parsed.ID
		}
	}

	layout, err := Build(parsed, hb)
	if err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", p, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Layout:   layout,
		Hitboxes: hb,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
