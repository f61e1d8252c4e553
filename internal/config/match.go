package config

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// FileMatcher selects source files by include/exclude globs
type FileMatcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

// Matcher compiles the include and exclude patterns
func (c *ProjectConfig) Matcher() (*FileMatcher, error) {
	include, err := compileAll(c.Include)
	if err != nil {
		return nil, err
	}
	exclude, err := compileAll(c.Exclude)
	if err != nil {
		return nil, err
	}
	return &FileMatcher{include: include, exclude: exclude}, nil
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// Match reports whether rel, a path relative to the project root, is selected.
// With no include patterns every file is included.
func (m *FileMatcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)

	for _, g := range m.exclude {
		if g.Match(rel) {
			return false
		}
	}
	if len(m.include) == 0 {
		return true
	}
	for _, g := range m.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// ExcludesDir reports whether a directory, relative to the root, is excluded
// so a walker can skip it entirely
func (m *FileMatcher) ExcludesDir(rel string) bool {
	rel = filepath.ToSlash(rel) + "/"
	for _, g := range m.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
