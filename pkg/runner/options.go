// Package runner applies a tree transform to many C# and Markdown files
// concurrently, producing edits, diffs, and optional in-place writes.
package runner

import (
	"github.com/yaklabco/triviakit/pkg/config"
	"github.com/yaklabco/triviakit/pkg/fsutil"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Transform rewrites a parsed compilation unit. It is called once per C#
// file and once per selected Markdown code block, possibly from several
// goroutines at a time.
type Transform func(root syntax.Node) (syntax.Node, error)

// Options controls a run.
type Options struct {
	// Paths are files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and ignore globs. Defaults to the
	// process working directory.
	WorkingDir string

	// ExcludeGlobs are slash-separated glob patterns, relative to
	// WorkingDir, for files and directories to skip.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers; 0 or negative
	// means runtime.NumCPU().
	Jobs int

	// Write replaces changed files on disk.
	Write bool

	// Diff records a unified diff for every changed file.
	Diff bool

	// Config supplies extensions, Markdown settings and backups. Nil means
	// config.NewConfig().
	Config *config.Config

	// Transform is applied to every parsed tree.
	Transform Transform
}

// MarkdownExtensions are the extensions scanned for C# code blocks.
func MarkdownExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// extensions returns every extension discovery accepts.
func (o Options) extensions() []string {
	cfg := o.config()
	exts := append([]string(nil), cfg.Extensions...)
	if cfg.MarkdownEnabled() {
		exts = append(exts, MarkdownExtensions()...)
	}
	return exts
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) backups() fsutil.BackupConfig {
	cfg := o.config()
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}
