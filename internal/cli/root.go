package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	workspace string
	debug     bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "addrbook",
		Short:        "addrbook: in-memory contact directory",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to the workspace log file")

	cmd.AddCommand(
		listCmd(opts),
		browseCmd(opts),
		showCmd(opts),
		birthdaysCmd(opts),
		validateCmd(opts),
		initCmd(),
		demoCmd(),
		versionCmd(),
	)
	return cmd
}
