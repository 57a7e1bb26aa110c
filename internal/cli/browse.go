package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/ui/tui"
)

func browseCmd(opts *globalOptions) *cobra.Command {
	var file string
	var batch int

	c := &cobra.Command{
		Use:   "browse",
		Short: "Page through contacts interactively, one batch at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			size := ws.cfg.Defaults.BatchSize
			if cmd.Flags().Changed("batch") {
				size = batch
			}
			bookPath := resolveBookPath(ws, file)
			ws.log.Info("contacts.browse", "book", bookPath, "batch", size)

			return tui.Run(tui.Deps{
				Books:     ws.books,
				BookPath:  bookPath,
				BatchSize: size,
				Logger:    ws.log,
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Seed file (optional; defaults to the workspace book)")
	c.Flags().IntVarP(&batch, "batch", "b", 0, "Contacts per batch (optional; defaults to workspace batch_size)")
	return c
}
