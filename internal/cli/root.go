// Package cli provides the Cobra command structure for triviakit.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/triviakit/internal/logging"
	"github.com/yaklabco/triviakit/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root triviakit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var (
		debug bool
		color string
	)

	rootCmd := &cobra.Command{
		Use:   "triviakit",
		Short: "Strip, replace and inspect the trivia of C# sources",
		Long: `triviakit edits the trivia of C# source files: the whitespace, line
breaks, comments and preprocessor directives between tokens.

Rewrites work on whole files, directory trees and the C# code blocks of
Markdown files, and never touch a token. List commands fill, duplicate or
remove one element of an argument, parameter or initializer list while
keeping its formatting.`,
		Version: info.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	// Registered up front so --help is a bool flag while args are resolved.
	rootCmd.InitDefaultHelpFlag()

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: groupRewrite, Title: "Trivia Rewrites:"},
		&cobra.Group{ID: groupList, Title: "List Edits:"},
		&cobra.Group{ID: groupInspect, Title: "Inspection:"},
	)
	addToGroup(rootCmd, groupRewrite,
		newStripCommentsCommand(),
		newStripWhitespaceCommand(),
		newReplaceWhitespaceCommand(),
	)
	addToGroup(rootCmd, groupList,
		newFillCommand(),
		newDuplicateCommand(),
		newRemoveElementCommand(),
	)
	addToGroup(rootCmd, groupInspect,
		newLinesCommand(),
		newExtractCommand(),
		newTriviaCommand(),
	)
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(config.ColorMode(color), rootCmd.OutOrStdout()).ApplyToCommand(rootCmd)

	return rootCmd
}

func addToGroup(root *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = group
		root.AddCommand(cmd)
	}
}

// usageArgs wraps an argument validator so its errors map to the usage
// exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return nil
	}
}
