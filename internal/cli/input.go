package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/triviakit/pkg/config"
	"github.com/yaklabco/triviakit/pkg/fix"
	"github.com/yaklabco/triviakit/pkg/fsutil"
)

const stdinName = "-"

// source is one C# input: a file or standard input.
type source struct {
	Path    string
	Content []byte

	// Info is nil for standard input.
	Info *fsutil.FileInfo
}

func (s *source) isStdin() bool {
	return s.Info == nil
}

func (s *source) displayName() string {
	if s.isStdin() {
		return "<stdin>"
	}
	return s.Path
}

// readSource reads the file named by args, or standard input when args is
// empty or "-". An interactive terminal on stdin is a usage error rather
// than a silent wait.
func readSource(cmd *cobra.Command, args []string) (*source, error) {
	if len(args) > 0 && args[0] != stdinName {
		content, info, err := fsutil.ReadFile(cmd.Context(), args[0])
		if err != nil {
			return nil, err
		}
		return &source{Path: args[0], Content: content, Info: info}, nil
	}

	in := cmd.InOrStdin()
	if len(args) == 0 && isTerminal(in) {
		return nil, fmt.Errorf("%w: no input file and stdin is a terminal", ErrInvalidUsage)
	}
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &source{Path: stdinName, Content: content}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outputFlags select what happens to a rewritten single input.
type outputFlags struct {
	write bool
	diff  bool
	check bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVarP(&f.diff, "diff", "d", false, "print a unified diff instead of the result")
	cmd.Flags().BoolVar(&f.check, "check", false, "exit with status 1 if the input would change")
}

// emit delivers the rewritten text of src: written back, shown as a diff,
// checked, or printed.
func emit(ctx context.Context, cmd *cobra.Command, cfg *config.Config, src *source, rewritten string, flags outputFlags) error {
	out := cmd.OutOrStdout()
	changed := rewritten != string(src.Content)

	switch {
	case flags.write:
		if src.isStdin() {
			return fmt.Errorf("%w: --write needs a file, not stdin", ErrInvalidUsage)
		}
		if !changed {
			return nil
		}
		backups := fsutil.BackupConfig{Enabled: cfg.Backups.Enabled, Mode: fsutil.BackupMode(cfg.Backups.Mode)}
		if err := fsutil.WriteBack(ctx, src.Info, []byte(rewritten), backups); err != nil {
			return err
		}
	case flags.diff:
		diff := fix.GenerateDiff(src.displayName(), src.Content, []byte(rewritten))
		newStyles(cfg, out).WriteDiff(out, diff)
	case flags.check:
		if changed {
			fmt.Fprintln(out, src.displayName())
		}
	default:
		if _, err := io.WriteString(out, rewritten); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if flags.check && changed {
		return ErrChangesNeeded
	}
	return nil
}
