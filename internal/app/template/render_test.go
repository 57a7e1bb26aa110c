package template

import (
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/addrbook/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("Hello {{name}}", map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ name }}: {{phones}}", map[string]string{
		"name":   "Sam",
		"phones": "1234567890",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Sam: 1234567890" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := map[string]string{
		"unknown":  "Hello {{nickname}}",
		"unclosed": "Hello {{name",
		"empty":    "Hello {{ }}",
	}
	for name, tpl := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := RenderString(tpl, map[string]string{"name": "Ada"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidTemplate) {
				t.Fatalf("expected ErrInvalidTemplate, got %v", err)
			}
			if !domain.IsKind(err, domain.KindValidation) {
				t.Fatalf("expected validation kind, got %v", err)
			}
		})
	}
}

func TestRecordVars(t *testing.T) {
	bday, err := domain.NewBirthday("1992-05-17")
	if err != nil {
		t.Fatal(err)
	}
	rec, err := domain.NewRecord("Jane", domain.WithBirthday(bday))
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.AddPhone("1234567890"); err != nil {
		t.Fatal(err)
	}
	if err := rec.AddPhone("0987654321"); err != nil {
		t.Fatal(err)
	}

	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	days, ok := rec.DaysToBirthday(today)
	out, err := RenderString("{{name}} [{{phones}}] {{birthday}} {{days}}", RecordVars(rec, days, ok))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Jane [1234567890, 0987654321] 1992-05-17 7"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRecordVarsWithoutBirthday(t *testing.T) {
	rec, err := domain.NewRecord("John")
	if err != nil {
		t.Fatal(err)
	}
	vars := RecordVars(rec, 0, false)
	if vars[VarBirthday] != "" || vars[VarDays] != "" || vars[VarPhones] != "" {
		t.Fatalf("expected empty optional vars, got %#v", vars)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("{{name}} {{days}}"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate("{{age}}"); err == nil {
		t.Fatalf("expected error for unknown variable")
	}
}
