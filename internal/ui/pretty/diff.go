package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/triviakit/pkg/fix"
)

// WriteDiff writes one file's diff in git style.
func (s *Styles) WriteDiff(w io.Writer, diff *fix.Diff) {
	if !diff.HasChanges() {
		return
	}

	fmt.Fprintln(w, s.DiffHeader.Render(diff.GitHeader()))
	for _, line := range strings.Split(strings.TrimSuffix(diff.String(), "\n"), "\n") {
		fmt.Fprintln(w, s.diffLine(line))
	}
}

// WriteDiffs writes diffs separated by blank lines, followed by a
// git-style shortstat line. It returns the number of files written.
func (s *Styles) WriteDiffs(w io.Writer, diffs []*fix.Diff) int {
	var files, additions, deletions int
	for _, diff := range diffs {
		if !diff.HasChanges() {
			continue
		}
		if files > 0 {
			fmt.Fprintln(w)
		}
		s.WriteDiff(w, diff)
		files++
		additions += diff.Additions
		deletions += diff.Deletions
	}
	if files > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.FormatShortStat(files, additions, deletions))
	}
	return files
}

func (s *Styles) diffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}

// FormatShortStat formats "N files changed, A insertions(+), D deletions(-)".
func (s *Styles) FormatShortStat(files, additions, deletions int) string {
	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, s.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, s.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
