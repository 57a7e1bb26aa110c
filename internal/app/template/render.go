package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/addrbook/internal/domain"
)

// Placeholders understood by RenderRecord.
const (
	VarName     = "name"
	VarPhones   = "phones"
	VarBirthday = "birthday"
	VarDays     = "days"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is unknown or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", templateError("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", templateError("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", templateError(fmt.Sprintf("unknown variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// RecordVars exposes r as template variables. Phones are joined with ", ";
// birthday and days are empty when the record has no birthday.
func RecordVars(r *domain.Record, days int, hasDays bool) map[string]string {
	phones := r.Phones()
	parts := make([]string, 0, len(phones))
	for _, p := range phones {
		parts = append(parts, p.Value())
	}

	vars := map[string]string{
		VarName:     r.Name().Value(),
		VarPhones:   strings.Join(parts, ", "),
		VarBirthday: "",
		VarDays:     "",
	}
	if b, ok := r.Birthday(); ok {
		vars[VarBirthday] = b.String()
	}
	if hasDays {
		vars[VarDays] = fmt.Sprint(days)
	}
	return vars
}

// Validate checks tpl against the record variables without a record at hand.
func Validate(tpl string) error {
	_, err := RenderString(tpl, map[string]string{
		VarName: "", VarPhones: "", VarBirthday: "", VarDays: "",
	})
	return err
}

func templateError(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindValidation,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidTemplate),
	}
}
