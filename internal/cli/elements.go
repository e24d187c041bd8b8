package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/triviakit/internal/logging"
	"github.com/yaklabco/triviakit/pkg/config"
	"github.com/yaklabco/triviakit/pkg/listedit"
	"github.com/yaklabco/triviakit/pkg/parser/csharp"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// elementEdit edits the list element at a position and returns the new tree.
type elementEdit func(cfg *config.Config, root syntax.Node, at syntax.Span) (syntax.Node, error)

type elementFlags struct {
	outputFlags
	at int
}

func (f *elementFlags) register(cmd *cobra.Command) {
	f.outputFlags.register(cmd)
	cmd.Flags().IntVar(&f.at, "at", -1, "byte offset inside the target element or empty slot")
}

func newFillCommand() *cobra.Command {
	var (
		flags elementFlags
		text  string
	)

	cmd := &cobra.Command{
		Use:   "fill [file]",
		Short: "Fill an empty slot in an argument, index or initializer list",
		Long: `Fill the missing element at --at with placeholder text. The trivia around
the slot moves onto the new element, so "f(a, , c)" becomes "f(a, x, c)".
A slot is only filled when the element before it is present.`,
		Example: `  triviakit fill Program.cs --at 42 --text null
  echo 'f(1, , 3);' | triviakit fill --at 5`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli := &config.Config{}
			if cmd.Flags().Changed("text") {
				cli.Placeholder = text
			}
			edit := func(cfg *config.Config, root syntax.Node, at syntax.Span) (syntax.Node, error) {
				return listedit.ApplyAt(root, at, listedit.OpFillMissing, csharp.ParseElement(cfg.Placeholder))
			}
			return runElementEdit(cmd, args, &flags, cli, edit)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&text, "text", "", "element text (default from config placeholder)")
	return cmd
}

func newDuplicateCommand() *cobra.Command {
	var flags elementFlags

	cmd := &cobra.Command{
		Use:   "duplicate [file]",
		Short: "Duplicate the list element at an offset",
		Long: `Insert a copy of the element at --at directly after it, with a new
separator. Formatting of the copy follows the original.`,
		Example: `  triviakit duplicate Program.cs --at 42 -w`,
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit := func(_ *config.Config, root syntax.Node, at syntax.Span) (syntax.Node, error) {
				return listedit.ApplyAt(root, at, listedit.OpDuplicate, syntax.Node{})
			}
			return runElementEdit(cmd, args, &flags, nil, edit)
		},
	}

	flags.register(cmd)
	return cmd
}

func newRemoveElementCommand() *cobra.Command {
	var flags elementFlags

	cmd := &cobra.Command{
		Use:   "remove-element [file]",
		Short: "Remove the list element at an offset together with its separator",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElementEdit(cmd, args, &flags, nil, removeElement)
		},
	}

	flags.register(cmd)
	return cmd
}

func removeElement(_ *config.Config, root syntax.Node, at syntax.Span) (syntax.Node, error) {
	list, ok := listedit.FindList(root, at)
	if !ok {
		return root, fmt.Errorf("no list encloses %s: %w", at, listedit.ErrNotApplicable)
	}
	index := listedit.IndexAt(list, at)
	if index < 0 {
		return root, fmt.Errorf("no element at %s: %w", at, listedit.ErrNotApplicable)
	}
	edited, err := listedit.RemoveAt(list, index)
	if err != nil {
		return root, err
	}
	return listedit.ReplaceList(root, list, edited), nil
}

func runElementEdit(cmd *cobra.Command, args []string, flags *elementFlags, cli *config.Config, edit elementEdit) error {
	ctx := cmd.Context()

	if flags.at < 0 {
		return fmt.Errorf("%w: --at is required and must be a byte offset", ErrInvalidUsage)
	}

	cfg, err := loadConfig(cmd, cli)
	if err != nil {
		return err
	}
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	if flags.at > len(src.Content) {
		return fmt.Errorf("%w: --at %d is past the end of %s (%d bytes)",
			ErrInvalidUsage, flags.at, src.displayName(), len(src.Content))
	}

	root := csharp.Parse(string(src.Content))
	out, err := edit(cfg, root, syntax.NewSpan(flags.at, 0))
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("edited list", logging.FieldPath, src.displayName(), logging.FieldOffset, flags.at)
	return emit(ctx, cmd, cfg, src, out.FullString(), flags.outputFlags)
}
