package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/triviakit/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "3 of 12 files changed, 2 written, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("Nothing to change") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))) + "\n"
	}

	parts := []string{fmt.Sprintf("%d of %d %s changed",
		stats.FilesChanged, stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))}

	if stats.FilesModified > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesModified)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	row := func(label string, value int, style func(...string) string) {
		fmt.Fprintf(&b, "  %-18s %s\n", label+":", style(strconv.Itoa(value)))
	}

	row("Files checked", stats.FilesProcessed, s.SummaryValue.Render)
	row("Files changed", stats.FilesChanged, s.SummaryValue.Render)
	if stats.FilesModified > 0 {
		row("Files written", stats.FilesModified, s.Success.Render)
	}
	if stats.FilesSkipped > 0 {
		row("Files skipped", stats.FilesSkipped, s.Warning.Render)
	}
	if stats.FilesErrored > 0 {
		row("Files failed", stats.FilesErrored, s.Failure.Render)
	}
	if stats.BlocksRewritten > 0 || stats.BlocksSkipped > 0 {
		row("Code blocks", stats.BlocksRewritten, s.SummaryValue.Render)
	}
	if stats.BlocksSkipped > 0 {
		row("Blocks skipped", stats.BlocksSkipped, s.Warning.Render)
	}

	b.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		b.WriteString(s.Failure.Render("Finished with errors"))
	case stats.FilesChanged > 0 && stats.FilesModified < stats.FilesChanged:
		b.WriteString(s.Warning.Render("Changes pending"))
	default:
		b.WriteString(s.Success.Render("Done"))
	}
	b.WriteString("\n")
	return b.String()
}
