package cli

import (
	"github.com/spf13/cobra"

	"logdeck/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Stream bool
	NoUI   bool
	Force  bool
	DryRun bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandRun}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	if args == nil {
		args = []string{}
	}

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print entries to stdout instead of opening the console")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().BoolVarP(&result.Stream, "stream", "s", false, "Start the synthetic feed immediately")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Open the log console",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.Flags().BoolVarP(&result.Stream, "stream", "s", false, "Start the synthetic feed immediately")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.ConfigFile + " template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
