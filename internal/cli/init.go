package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/triviakit/internal/logging"
	"github.com/yaklabco/triviakit/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a triviakit configuration file",
		Long: `Write a commented .triviakit.yml with the default settings to the current
directory. A JSON file is not discovered automatically; pass it with --config.`,
		Example: `  triviakit init
  triviakit init --format json --output triviakit.json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, &flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output path (default .triviakit.yml or .triviakit.json)")
	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	content, err := config.GenerateTemplate(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	path := flags.output
	if path == "" {
		path = ".triviakit.yml"
		if flags.format == "json" {
			path = ".triviakit.json"
		}
	}

	_, err = os.Stat(path)
	switch {
	case err == nil && !flags.force:
		return fmt.Errorf("%w: %s already exists; use --force to overwrite", ErrInvalidUsage, path)
	case err == nil:
		logger.Warn("overwriting existing file", logging.FieldPath, path)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}
