// Package levels loads hand-made rooms from YAML files. Built-in levels
// ship inside the binary; more can be dropped into a directory.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/niwa/internal/levels/formats"
)

// ErrLevelNotFound is returned by LoadByID for unknown ids.
var ErrLevelNotFound = errors.New("levels: level not found")

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system. root is only
// used to build FilePath values.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded levels: %v", err))
	}
	return NewFSLoader(sub, "builtin")
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic
// ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.load(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file from disk.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}
	return parse(data, p)
}

// load reads a file relative to the loader's file system.
func (l *Loader) load(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}
	return parse(data, filepath.Join(l.Root, filepath.FromSlash(p)))
}

func parse(data []byte, p string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", p, err)
	}
	return fromFormat(parsed, p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return findLevel(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return levelIDs(levels), nil
}

// Catalog merges several loaders. When two sources define the same id the
// later source wins, so user levels can replace built-in ones.
type Catalog struct {
	sources []*Loader
}

// NewCatalog returns the built-in levels followed by userDir, if set.
func NewCatalog(userDir string) *Catalog {
	c := &Catalog{sources: []*Loader{Builtin()}}
	if userDir != "" {
		c.sources = append(c.sources, NewLoader(userDir))
	}
	return c
}

// NewCatalogFrom builds a catalog from explicit sources.
func NewCatalogFrom(sources ...*Loader) *Catalog {
	return &Catalog{sources: sources}
}

// LoadAll returns the merged level list sorted by ID. A source directory
// that does not exist is ignored.
func (c *Catalog) LoadAll() ([]Level, error) {
	byID := make(map[string]Level)
	for _, src := range c.sources {
		levels, err := src.LoadAll()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, lvl := range levels {
			byID[lvl.ID] = lvl
		}
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	slices.SortFunc(out, func(a, b Level) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

// LoadByID loads a specific level by ID.
func (c *Catalog) LoadByID(id string) (Level, error) {
	levels, err := c.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return findLevel(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (c *Catalog) ListIDs() ([]string, error) {
	levels, err := c.LoadAll()
	if err != nil {
		return nil, err
	}
	return levelIDs(levels), nil
}

func findLevel(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

func levelIDs(levels []Level) []string {
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
