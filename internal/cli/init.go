package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/infra/fsworkspace"
	"github.com/aalvaropc/addrbook/internal/infra/logger"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a sample workspace (addrbook.yaml + book.yaml)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			cleanup, logErr := logger.Setup(logger.Config{Root: root})
			if logErr == nil {
				defer func() { _ = cleanup() }()
			}

			wi := fsworkspace.NewInitializer(fsworkspace.WithLogger(logger.L()))
			if err := wi.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
