package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/aalvaropc/addrbook/internal/app/template"
	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/usecase"
)

type theme struct {
	Title  lipgloss.Style
	Faint  lipgloss.Style
	Accent lipgloss.Style
}

// newTheme styles output only when w is a terminal.
func newTheme(w io.Writer) theme {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return theme{Title: plain, Faint: plain, Accent: plain}
	}
	return theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Faint:  lipgloss.NewStyle().Faint(true),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// contactView is the JSON shape of a record.
type contactView struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

func toView(r *domain.Record) contactView {
	v := contactView{
		Name:   r.Name().Value(),
		Phones: []string{},
	}
	for _, p := range r.Phones() {
		v.Phones = append(v.Phones, p.Value())
	}
	if b, ok := r.Birthday(); ok {
		v.Birthday = b.String()
	}
	return v
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printBatchPretty prints one batch. A non-empty tpl replaces the default
// record rendering.
func printBatchPretty(w io.Writer, th theme, index int, batch []*domain.Record, tpl string, today time.Time) error {
	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("Batch %d", index+1)))
	for _, r := range batch {
		if tpl == "" {
			fmt.Fprintf(w, "  %s\n", r)
			continue
		}
		days, ok := r.DaysToBirthday(today)
		line, err := template.RenderString(tpl, template.RecordVars(r, days, ok))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
	return nil
}

func printContact(w io.Writer, r *domain.Record, format string) error {
	switch format {
	case "json":
		return writeJSON(w, toView(r))
	case "pretty", "":
		fmt.Fprintln(w, r)
		return nil
	default:
		return checkFormat(format)
	}
}

func printBirthdays(w io.Writer, entries []usecase.UpcomingBirthday, withinDays int, format string) error {
	switch format {
	case "json":
		return writeJSON(w, entries)
	case "pretty", "":
		th := newTheme(w)
		if len(entries) == 0 {
			fmt.Fprintln(w, th.Faint.Render(fmt.Sprintf("(no birthdays in the next %d day(s))", withinDays)))
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(w, "- %s  %s  (%s)\n",
				th.Title.Render(e.Name),
				daysLabel(e.DaysLeft),
				th.Faint.Render(e.Next.Format(domain.BirthdayLayout)))
		}
		return nil
	default:
		return checkFormat(format)
	}
}

func daysLabel(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
