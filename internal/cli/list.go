package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/app/template"
	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/usecase"
)

func listCmd(opts *globalOptions) *cobra.Command {
	var file string
	var batch int
	var format string
	var tpl string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print every contact in batches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if tpl != "" {
				if format == "json" {
					return fmt.Errorf("--template cannot be combined with --format json")
				}
				if err := template.Validate(tpl); err != nil {
					return err
				}
			}

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
			ws.log.Info("contacts.list", "book", bookPath, "batch", size)

			out := cmd.OutOrStdout()
			th := newTheme(out)

			var batches [][]contactView
			empty := true
			err = usecase.NewListContacts(ws.books).Execute(cmd.Context(), bookPath, size, func(i int, recs []*domain.Record) error {
				empty = false
				if format == "json" {
					views := make([]contactView, 0, len(recs))
					for _, r := range recs {
						views = append(views, toView(r))
					}
					batches = append(batches, views)
					return nil
				}
				return printBatchPretty(out, th, i, recs, tpl, time.Now())
			})
			if err != nil {
				return err
			}

			if format == "json" {
				if batches == nil {
					batches = [][]contactView{}
				}
				return writeJSON(out, batches)
			}
			if empty {
				fmt.Fprintln(out, th.Faint.Render("(no contacts found)"))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Seed file (optional; defaults to the workspace book)")
	c.Flags().IntVarP(&batch, "batch", "b", 0, "Contacts per batch (optional; defaults to workspace batch_size)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVarP(&tpl, "template", "t", "", "Line template for pretty output, e.g. '{{name}}: {{phones}}' (vars: name, phones, birthday, days)")
	return c
}
