package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/triviakit/internal/logging"
	"github.com/yaklabco/triviakit/internal/ui/pretty"
	"github.com/yaklabco/triviakit/pkg/config"
	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/rewrite"
	"github.com/yaklabco/triviakit/pkg/runner"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// spanTransform rewrites the part of a tree inside span.
type spanTransform func(root syntax.Node, span syntax.Span) (syntax.Node, error)

// transformFactory builds a spanTransform once configuration is resolved.
type transformFactory func(cfg *config.Config) (spanTransform, error)

type rewriteFlags struct {
	outputFlags
	span    spanValue
	jobs    int
	ignore  []string
	summary bool
}

func (f *rewriteFlags) register(cmd *cobra.Command) {
	f.outputFlags.register(cmd)
	cmd.Flags().Var(&f.span, "span", "only rewrite trivia inside this byte range of a single input")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "glob patterns to skip, added to the configured ones")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "print a summary block after a multi-file run")
}

const rewriteExamples = `  %[1]s Program.cs                 # show the changes as a diff
  %[1]s -w src/                      # rewrite every C# and Markdown file under src
  %[1]s --check .                    # exit 1 if anything would change
  %[1]s --span 120:480 -w Program.cs # only touch a byte range
  cat Program.cs | %[1]s -           # filter stdin to stdout`

const rewriteLongTail = `
Paths may be files or directories. Directories are searched for C# sources
and Markdown files; C# fenced code blocks in Markdown are rewritten in place.
Without --write the changes are shown as diffs. A single "-" reads C# from
standard input and prints the result.`

func newStripCommentsCommand() *cobra.Command {
	var (
		flags     rewriteFlags
		kind      string
		keepDocs  bool
		docsOnly  bool
		allTrivia bool
	)

	cmd := &cobra.Command{
		Use:   "strip-comments [paths...]",
		Short: "Remove comments from C# sources",
		Long: `Remove comments, leaving code and line structure intact. A comment on a
line of its own takes the line with it.` + rewriteLongTail,
		Example: fmt.Sprintf(rewriteExamples, "triviakit strip-comments"),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli := &config.Config{Jobs: flags.jobs}
			switch {
			case keepDocs && docsOnly:
				return fmt.Errorf("%w: --keep-docs and --docs-only are exclusive", ErrInvalidUsage)
			case keepDocs:
				cli.Comments = rewrite.AllExceptDocumentation.String()
			case docsOnly:
				cli.Comments = rewrite.Documentation.String()
			case cmd.Flags().Changed("kind"):
				cli.Comments = kind
			}

			factory := func(cfg *config.Config) (spanTransform, error) {
				if allTrivia {
					return rewrite.RemoveAllTrivia, nil
				}
				opts, err := cfg.RemoveOptions()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrConfig, err)
				}
				return func(root syntax.Node, span syntax.Span) (syntax.Node, error) {
					return rewrite.RemoveTriviaIn(root, opts, span)
				}, nil
			}
			return runRewrite(cmd, args, &flags, cli, factory)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", `comment kinds to remove, e.g. "single-line,multi-line" (default from config)`)
	cmd.Flags().BoolVar(&keepDocs, "keep-docs", false, "keep documentation comments")
	cmd.Flags().BoolVar(&docsOnly, "docs-only", false, "remove only documentation comments")
	cmd.Flags().BoolVar(&allTrivia, "all-trivia", false, "remove every trivia, whitespace and directives included")
	return cmd
}

func newStripWhitespaceCommand() *cobra.Command {
	var flags rewriteFlags

	cmd := &cobra.Command{
		Use:     "strip-whitespace [paths...]",
		Short:   "Remove whitespace and line breaks between tokens",
		Long:    `Remove whitespace and line-break trivia. Comments are kept.` + rewriteLongTail,
		Example: fmt.Sprintf(rewriteExamples, "triviakit strip-whitespace"),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := func(*config.Config) (spanTransform, error) {
				return rewrite.RemoveWhitespaceIn, nil
			}
			return runRewrite(cmd, args, &flags, &config.Config{Jobs: flags.jobs}, factory)
		},
	}

	flags.register(cmd)
	return cmd
}

func newReplaceWhitespaceCommand() *cobra.Command {
	var (
		flags       rewriteFlags
		replacement string
	)

	cmd := &cobra.Command{
		Use:   "replace-whitespace [paths...]",
		Short: "Replace whitespace and line breaks with a fixed string",
		Long: `Replace every whitespace and line-break trivia with the same text, by
default a single space. This collapses a region onto one line.` + rewriteLongTail,
		Example: fmt.Sprintf(rewriteExamples, "triviakit replace-whitespace"),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli := &config.Config{Jobs: flags.jobs}
			if cmd.Flags().Changed("with") {
				cli.Whitespace.Replacement = replacement
			}
			factory := func(cfg *config.Config) (spanTransform, error) {
				trivia := cfg.ReplacementTrivia()
				return func(root syntax.Node, span syntax.Span) (syntax.Node, error) {
					return rewrite.ReplaceWhitespaceIn(root, trivia, span)
				}, nil
			}
			return runRewrite(cmd, args, &flags, cli, factory)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&replacement, "with", " ", "replacement text; must itself be whitespace")
	return cmd
}

// runRewrite runs a trivia rewrite over a single input or many files.
func runRewrite(cmd *cobra.Command, args []string, flags *rewriteFlags, cli *config.Config, factory transformFactory) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(cmd, cli)
	if err != nil {
		return err
	}
	transform, err := factory(cfg)
	if err != nil {
		return err
	}

	if single(args, flags) {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		root := csharp.Parse(string(src.Content))
		out, err := transform(root, flags.span.resolve(len(src.Content)))
		if err != nil {
			return err
		}
		logger.Debug("rewrote input", logging.FieldPath, src.displayName(), logging.FieldSpan, flags.span.String())
		return emit(ctx, cmd, cfg, src, out.FullString(), flags.outputFlags)
	}

	if flags.span.set {
		return fmt.Errorf("%w: --span needs a single C# file or stdin", ErrInvalidUsage)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := runner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: slices.Concat(cfg.Ignore, flags.ignore),
		Jobs:         cfg.Jobs,
		Write:        flags.write,
		Diff:         flags.diff || (!flags.write && !flags.check),
		Config:       cfg,
		Transform: func(root syntax.Node) (syntax.Node, error) {
			return transform(root, root.FullSpan())
		},
	})
	if err != nil {
		return err
	}

	report(cmd, cfg, result, flags, workDir)
	return resultError(result, flags.check)
}

// single reports whether args name one input handled outside the runner:
// stdin, or a single C# file when a span is given. A directory never is.
func single(args []string, flags *rewriteFlags) bool {
	if len(args) != 1 {
		return false
	}
	if args[0] == stdinName {
		return true
	}
	if !flags.span.set {
		return false
	}
	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		return false
	}
	ext := strings.ToLower(filepath.Ext(args[0]))
	return ext != ".md" && ext != ".markdown"
}

// report prints diffs or changed paths to stdout and failures and the
// summary to stderr.
func report(cmd *cobra.Command, cfg *config.Config, result *runner.Result, flags *rewriteFlags, workDir string) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	styles := newStyles(cfg, out)
	errStyles := newStyles(cfg, errOut)

	switch {
	case flags.check:
		for _, file := range result.Files {
			if file.Result.Changed() {
				fmt.Fprintln(out, relPath(workDir, file.Path))
			}
		}
	case flags.diff || !flags.write:
		styles.WriteDiffs(out, result.Diffs())
	}

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			fmt.Fprintf(errOut, "%s: %s\n",
				errStyles.FilePath.Render(relPath(workDir, file.Path)),
				errStyles.Error.Render(file.Error.Error()))
		case file.Result != nil && file.Result.Skipped && file.Result.Changed():
			fmt.Fprintf(errOut, "%s: %s\n",
				errStyles.FilePath.Render(relPath(workDir, file.Path)),
				errStyles.Warning.Render("skipped: "+file.Result.SkipReason))
		}
	}

	if flags.summary {
		writeString(errOut, errStyles.FormatSummary(result.Stats))
	} else if flags.write {
		writeString(errOut, errStyles.FormatSummaryOneLine(result.Stats))
	}
}

func relPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func newStyles(cfg *config.Config, w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, w))
}

func writeString(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
