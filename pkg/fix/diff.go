package fix

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// DiffLineKind says whether a diff line is kept, added, or removed.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

func (k DiffLineKind) prefix() byte {
	switch k {
	case DiffLineAdd:
		return '+'
	case DiffLineRemove:
		return '-'
	default:
		return ' '
	}
}

// DiffLine is one line of a hunk, without its prefix.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffHunk is a run of changes with surrounding context. Starts are 1-based.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// Diff is a unified diff between two versions of a file.
type Diff struct {
	Path      string
	Original  []byte
	Modified  []byte
	Hunks     []DiffHunk
	Additions int
	Deletions int
}

// GenerateDiff returns the unified diff between original and modified, or
// nil if the two have the same lines.
func GenerateDiff(path string, original, modified []byte) *Diff {
	before, after := splitLines(original), splitLines(modified)
	ops := diffLines(before, after)

	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	diff := &Diff{Path: path, Original: original, Modified: modified, Hunks: hunks}
	for _, op := range ops {
		switch op.Kind {
		case DiffLineAdd:
			diff.Additions++
		case DiffLineRemove:
			diff.Deletions++
		}
	}
	return diff
}

// HasChanges returns true if the diff has at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			sb.WriteByte(line.Kind.prefix())
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FullString renders the diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// splitLines splits on "\n", dropping the empty line after a final newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffLines walks a longest-common-subsequence table from the front,
// emitting removals before additions inside each changed run.
func diffLines(before, after []string) []DiffLine {
	rows, cols := len(before), len(after)

	// suffix[i][j] is the LCS length of before[i:] and after[j:].
	suffix := make([][]int, rows+1)
	for i := range suffix {
		suffix[i] = make([]int, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if before[i] == after[j] {
				suffix[i][j] = suffix[i+1][j+1] + 1
			} else {
				suffix[i][j] = max(suffix[i+1][j], suffix[i][j+1])
			}
		}
	}

	ops := make([]DiffLine, 0, max(rows, cols))
	i, j := 0, 0
	for i < rows || j < cols {
		switch {
		case i < rows && j < cols && before[i] == after[j]:
			ops = append(ops, DiffLine{Kind: DiffLineContext, Content: before[i]})
			i++
			j++
		case i < rows && (j == cols || suffix[i+1][j] >= suffix[i][j+1]):
			ops = append(ops, DiffLine{Kind: DiffLineRemove, Content: before[i]})
			i++
		default:
			ops = append(ops, DiffLine{Kind: DiffLineAdd, Content: after[j]})
			j++
		}
	}
	return ops
}

// groupHunks cuts ops into hunks, merging changes separated by at most
// twice the context width.
func groupHunks(ops []DiffLine) []DiffHunk {
	var hunks []DiffHunk

	// origLine and modLine are the 1-based line numbers of ops[idx].
	origLine, modLine := 1, 1
	lastChange := -1
	start := -1
	var hunk DiffHunk

	flush := func(end int) {
		for k := start; k < end; k++ {
			hunk.Lines = append(hunk.Lines, ops[k])
			switch ops[k].Kind {
			case DiffLineContext:
				hunk.OriginalCount++
				hunk.ModifiedCount++
			case DiffLineRemove:
				hunk.OriginalCount++
			case DiffLineAdd:
				hunk.ModifiedCount++
			}
		}
		hunks = append(hunks, hunk)
		hunk = DiffHunk{}
		start = -1
	}

	lineAt := make([][2]int, len(ops))
	for idx, op := range ops {
		lineAt[idx] = [2]int{origLine, modLine}
		if op.Kind != DiffLineAdd {
			origLine++
		}
		if op.Kind != DiffLineRemove {
			modLine++
		}
	}

	for idx, op := range ops {
		if op.Kind == DiffLineContext {
			continue
		}
		if start >= 0 && idx-lastChange > 2*contextLines+1 {
			flush(lastChange + 1 + contextLines)
		}
		if start < 0 {
			start = max(0, idx-contextLines)
			hunk.OriginalStart = lineAt[start][0]
			hunk.ModifiedStart = lineAt[start][1]
		}
		lastChange = idx
	}
	if start >= 0 {
		flush(min(len(ops), lastChange+1+contextLines))
	}
	return hunks
}
