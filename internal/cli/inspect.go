package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/triviakit/internal/ui/pretty"
	"github.com/yaklabco/triviakit/pkg/listedit"
	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/selection"
	"github.com/yaklabco/triviakit/pkg/syntax"
	"github.com/yaklabco/triviakit/pkg/text"
	"github.com/yaklabco/triviakit/pkg/textbuild"
)

func newLinesCommand() *cobra.Command {
	var span spanValue

	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "List the lines a byte range selects",
		Long: `Print the lines covered by --span. The range must start at the start of a
line and end at the end of a line, with or without its line break.`,
		Example: `  triviakit lines Program.cs --span 0:57`,
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			content := string(src.Content)
			target := span.resolve(len(content))
			selected := selection.Lines(text.BuildLines(content), target)
			if !selected.Any() {
				return fmt.Errorf("span %s does not cover whole lines: %w", target, listedit.ErrNotApplicable)
			}

			styles := newStyles(cfg, cmd.OutOrStdout())
			table := styles.NewTable("LINE", "SPAN", "TEXT")
			for i, line := range selected.All() {
				table.AddCells(
					pretty.Cell{Text: strconv.Itoa(selected.FirstIndex + i + 1)},
					pretty.Cell{Text: line.Span().String(), Style: &styles.Span},
					pretty.Cell{Text: text.Content(content, line)},
				)
			}
			writeString(cmd.OutOrStdout(), table.String())
			return nil
		},
	}

	cmd.Flags().Var(&span, "span", "byte range to select (default whole input)")
	return cmd
}

func newExtractCommand() *cobra.Command {
	var (
		span     spanValue
		leading  bool
		trailing bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Print the tokens inside a byte range",
		Long: `Print the source text from the first to the last token inside --span.
Trivia before the first and after the last token is left out unless
--leading or --trailing is given.`,
		Example: `  triviakit extract Program.cs --span 10:42 --leading`,
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			root := csharp.Parse(string(src.Content))
			target := span.resolve(len(src.Content))

			out, err := extract(root, target, leading, trailing)
			if err != nil {
				return err
			}
			writeString(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Var(&span, "span", "byte range to extract (default whole input)")
	cmd.Flags().BoolVar(&leading, "leading", false, "include trivia before the first token")
	cmd.Flags().BoolVar(&trailing, "trailing", false, "include trivia after the last token")
	return cmd
}

// extract returns the text of the tokens whose spans lie inside span.
func extract(root syntax.Node, span syntax.Span, leading, trailing bool) (string, error) {
	var inside []syntax.Token
	for _, tok := range root.Tokens() {
		if tok.Kind() == syntax.KindEndOfFile || tok.Span().IsEmpty() {
			continue
		}
		if span.Contains(tok.Span()) {
			inside = append(inside, tok)
		}
	}
	if len(inside) == 0 {
		return "", fmt.Errorf("no tokens inside %s: %w", span, listedit.ErrNotApplicable)
	}
	first, last := inside[0], inside[len(inside)-1]

	builder, err := textbuild.New(root)
	if err != nil {
		return "", err
	}
	if leading {
		if err := builder.AppendLeadingTrivia(first); err != nil {
			return "", err
		}
	}
	if err := builder.AppendTextSpan(syntax.FromBounds(first.Span().Start, last.Span().End())); err != nil {
		return "", err
	}
	if trailing {
		if err := builder.AppendTrailingTrivia(last); err != nil {
			return "", err
		}
	}
	return builder.String(), nil
}

func newTriviaCommand() *cobra.Command {
	var span spanValue

	cmd := &cobra.Command{
		Use:     "trivia [file]",
		Short:   "List the trivia of a C# input",
		Example: `  triviakit trivia Program.cs --span 0:200`,
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			root := csharp.Parse(string(src.Content))
			target := span.resolve(len(src.Content))

			out := cmd.OutOrStdout()
			styles := newStyles(cfg, out)
			table := styles.NewTable("KIND", "SPAN", "TEXT")
			for _, trivia := range syntax.DescendantTrivia(root) {
				if trivia.Width() == 0 || !target.Contains(trivia.Span) {
					continue
				}
				style := styles.Trivia(trivia.Kind)
				table.AddCells(
					pretty.Cell{Text: trivia.Kind.String(), Style: &style},
					pretty.Cell{Text: trivia.Span.String(), Style: &styles.Span},
					pretty.Cell{Text: strconv.Quote(trivia.Text)},
				)
			}
			if table.Len() == 0 {
				return nil
			}
			writeString(out, table.String())
			return nil
		},
	}

	cmd.Flags().Var(&span, "span", "only list trivia inside this byte range")
	return cmd
}
