package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewName(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"John", true},
		{"j", true},
		{"Олена", true},
		{"", false},
		{"John Smith", false},
		{"John1", false},
		{"O'Brien", false},
		{"Anne-Marie", false},
	}
	for _, c := range cases {
		n, err := NewName(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("NewName(%q) unexpected error: %v", c.input, err)
				continue
			}
			if n.String() != c.input || n.Value() != c.input {
				t.Errorf("NewName(%q) rendered %q", c.input, n.String())
			}
			continue
		}
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("NewName(%q) expected ErrInvalidName, got %v", c.input, err)
		}
	}
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"", false},
		{"123456789", false},
		{"12345678901", false},
		{"123-456-78", false},
		{"123456789a", false},
		{" 123456789", false},
		{"١٢٣٤٥٦٧٨٩٠", false},
	}
	for _, c := range cases {
		p, err := NewPhone(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("NewPhone(%q) unexpected error: %v", c.input, err)
			} else if p.Value() != c.input {
				t.Errorf("NewPhone(%q) stored %q", c.input, p.Value())
			}
			continue
		}
		if !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("NewPhone(%q) expected ErrInvalidPhone, got %v", c.input, err)
		}
	}
}

func TestNewBirthday_RoundTrip(t *testing.T) {
	for _, s := range []string{"1990-01-01", "2000-02-29", "2024-12-31", "0999-07-04"} {
		b, err := NewBirthday(s)
		if err != nil {
			t.Fatalf("NewBirthday(%q) unexpected error: %v", s, err)
		}
		if b.String() != s {
			t.Errorf("round trip: got %q, want %q", b.String(), s)
		}
	}
}

func TestNewBirthday_Invalid(t *testing.T) {
	for _, s := range []string{"", "2021-02-30", "2023-02-29", "1990-13-01", "1990-1-01", "90-01-01", "1990/01/01", "01-01-1990", "1990-01-01T00:00:00Z"} {
		_, err := NewBirthday(s)
		if !errors.Is(err, ErrInvalidBirthday) {
			t.Errorf("NewBirthday(%q) expected ErrInvalidBirthday, got %v", s, err)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := NewPhone("12")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Field != FieldPhone || ve.Value != "12" {
		t.Fatalf("unexpected error fields: %+v", ve)
	}
	if err.Error() != `invalid phone "12": phone should consist of 10 digits only` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestBirthday_ZeroValue(t *testing.T) {
	var b Birthday
	if !b.IsZero() {
		t.Fatalf("expected zero birthday")
	}
	if b.String() != "" {
		t.Fatalf("expected empty rendering, got %q", b.String())
	}
}

func TestBirthdayFromTime_DropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	b := BirthdayFromTime(time.Date(1985, 6, 15, 23, 30, 0, 0, loc))
	if b.String() != "1985-06-15" {
		t.Fatalf("expected 1985-06-15, got %q", b.String())
	}
}

func TestFieldKinds(t *testing.T) {
	fields := []Field{Name{}, Phone{}, Birthday{}}
	want := []FieldKind{FieldName, FieldPhone, FieldBirthday}
	for i, f := range fields {
		if f.Kind() != want[i] {
			t.Errorf("field %d: kind %s, want %s", i, f.Kind(), want[i])
		}
	}
}
