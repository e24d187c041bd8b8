package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/triviakit/internal/configloader"
	"github.com/yaklabco/triviakit/internal/logging"
	"github.com/yaklabco/triviakit/pkg/config"
)

// loadConfig resolves the configuration for cmd, layering cli (values from
// command flags) over files and the environment.
func loadConfig(cmd *cobra.Command, cli *config.Config) (*config.Config, error) {
	logger := logging.FromContext(cmd.Context())

	if cli == nil {
		cli = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cli.Color = config.ColorMode(color)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, result.LoadedFrom)
	}
	return result.Config, nil
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate configuration",
	}
	cmd.AddCommand(newConfigShowCommand(), newConfigValidateCommand(), newConfigEnvCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			data, err := cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Long: `Validate a configuration file without running any command. With no
argument the file named by --config, or else the project configuration, is
checked.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFileToValidate(cmd, args)
			if err != nil {
				return err
			}

			result, err := configloader.ValidateFile(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}

			out := cmd.OutOrStdout()
			for _, msg := range result.AllMessages() {
				fmt.Fprintln(out, msg)
			}
			if !result.Valid() {
				return fmt.Errorf("%w: %s has %d error(s)", ErrConfig, path, len(result.Errors))
			}
			fmt.Fprintf(out, "%s is valid\n", path)
			return nil
		},
	}
}

func configFileToValidate(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	path, err := configloader.FindProjectConfig(cmd.Context(), workDir)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("%w: no configuration file found", ErrConfig)
	}
	return path, nil
}

func newConfigEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables that override configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			styles := newStyles(cfg, out)

			table := styles.NewTable("VARIABLE", "SET", "DESCRIPTION")
			for _, v := range configloader.ListEnvVars() {
				set := ""
				if _, ok := os.LookupEnv(v.Name); ok {
					set = "yes"
				}
				table.AddRow(v.Name, set, v.Description)
			}
			_, err = fmt.Fprint(out, table.String())
			return err
		},
	}
}
