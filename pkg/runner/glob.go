package runner

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/gobwas/glob"
)

// matcher tests slash-separated relative paths against ignore globs. "*"
// stops at "/", "**" does not.
type matcher []glob.Glob

func compileGlobs(patterns []string) (matcher, error) {
	m := make(matcher, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", pattern, err)
		}
		m = append(m, g)
	}
	return m, nil
}

// matchFile matches rel or its base name, so "*.g.cs" skips generated
// files at any depth.
func (m matcher) matchFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, g := range m {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// matchDir matches rel with a trailing slash as well, so "obj/**" prunes
// the obj directory itself.
func (m matcher) matchDir(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, g := range m {
		if g.Match(rel) || g.Match(rel+"/") {
			return true
		}
	}
	return false
}
