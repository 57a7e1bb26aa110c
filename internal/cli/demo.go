package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/addrbook/internal/domain"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in walkthrough on an in-memory book",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), time.Now())
		},
	}
}

// runDemo populates a fresh book, edits and searches a phone, reports a
// birthday and deletes a contact.
func runDemo(w io.Writer, today time.Time) error {
	book := domain.NewAddressBook()

	john, err := domain.NewRecord("John")
	if err != nil {
		return err
	}
	if err := john.AddPhone("1234567890"); err != nil {
		return err
	}
	if err := john.AddPhone("5555555555"); err != nil {
		return err
	}
	book.AddRecord(john)

	bday, err := domain.NewBirthday("1992-05-17")
	if err != nil {
		return err
	}
	jane, err := domain.NewRecord("Jane", domain.WithBirthday(bday))
	if err != nil {
		return err
	}
	if err := jane.AddPhone("9876543210"); err != nil {
		return err
	}
	book.AddRecord(jane)

	for _, r := range book.Records() {
		fmt.Fprintln(w, r)
	}

	found, ok := book.Find("John")
	if !ok {
		return fmt.Errorf("contact %q: %w", "John", domain.ErrNotFound)
	}
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return err
	}
	fmt.Fprintln(w, found)

	if p, ok := found.FindPhone("5555555555"); ok {
		fmt.Fprintf(w, "%s: %s\n", found.Name(), p)
	}

	if days, ok := jane.DaysToBirthday(today); ok {
		fmt.Fprintf(w, "%s: %s until birthday\n", jane.Name(), pluralDays(days))
	}

	book.Delete("Jane")
	fmt.Fprintf(w, "Jane deleted, %d contact(s) left\n", book.Len())
	return nil
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
