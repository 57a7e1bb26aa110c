package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/usecase"
)

func birthdaysCmd(opts *globalOptions) *cobra.Command {
	var file string
	var within int
	var format string

	c := &cobra.Command{
		Use:   "birthdays",
		Short: "List contacts whose birthday is coming up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer ws.close()

			days := ws.cfg.Defaults.UpcomingDays
			if cmd.Flags().Changed("within") {
				days = within
			}

			entries, err := usecase.NewUpcomingBirthdays(ws.books).Execute(cmd.Context(), resolveBookPath(ws, file), days)
			if err != nil {
				return err
			}
			return printBirthdays(cmd.OutOrStdout(), entries, days, format)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Seed file (optional; defaults to the workspace book)")
	c.Flags().IntVar(&within, "within", 0, "Window in days (optional; defaults to workspace upcoming_days)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
