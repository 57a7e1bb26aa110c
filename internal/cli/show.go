package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/usecase"
)

func showCmd(opts *globalOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one contact by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			rec, err := usecase.NewShowContact(ws.books).Execute(cmd.Context(), resolveBookPath(ws, file), args[0])
			if err != nil {
				return err
			}
			return printContact(cmd.OutOrStdout(), rec, format)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Seed file (optional; defaults to the workspace book)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
