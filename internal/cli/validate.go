package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/usecase"
)

func validateCmd(opts *globalOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a seed file (names, phones, birthdays)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			n, err := usecase.NewValidateBook(ws.books).Execute(cmd.Context(), resolveBookPath(ws, file))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d contact(s))\n", n)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Seed file (optional; defaults to the workspace book)")
	return c
}
