package domain

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// FieldKind identifies a field variant.
type FieldKind string

const (
	FieldName     FieldKind = "name"
	FieldPhone    FieldKind = "phone"
	FieldBirthday FieldKind = "birthday"
)

// BirthdayLayout is the only accepted textual form of a birthday.
const BirthdayLayout = "2006-01-02"

// PhoneLength is the exact number of digits a phone must have.
const PhoneLength = 10

// Field is a self-validating scalar. Values are only produced by the New*
// constructors and cannot be reassigned afterwards.
type Field interface {
	Kind() FieldKind
	String() string
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

// Name is the mandatory contact name: letters only, never empty.
type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	if err := ValidateName(value); err != nil {
		return Name{}, err
	}
	return Name{value: value}, nil
}

// ValidateName reports whether value is a non-empty run of letters.
func ValidateName(value string) error {
	if value == "" {
		return &ValidationError{Field: FieldName, Value: value, Rule: "name must not be empty"}
	}
	if !utf8.ValidString(value) {
		return &ValidationError{Field: FieldName, Value: value, Rule: "name must be valid UTF-8"}
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return &ValidationError{Field: FieldName, Value: value, Rule: "name should consist of letters only"}
		}
	}
	return nil
}

func (n Name) Kind() FieldKind { return FieldName }
func (n Name) Value() string   { return n.value }
func (n Name) String() string  { return n.value }

// Phone is a 10 digit phone number in canonical form.
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	if err := ValidatePhone(value); err != nil {
		return Phone{}, err
	}
	return Phone{value: value}, nil
}

// ValidatePhone accepts exactly PhoneLength ASCII digits. Separators are not
// stripped.
func ValidatePhone(value string) error {
	if len(value) != PhoneLength {
		return &ValidationError{Field: FieldPhone, Value: value, Rule: "phone should consist of 10 digits only"}
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return &ValidationError{Field: FieldPhone, Value: value, Rule: "phone should consist of 10 digits only"}
		}
	}
	return nil
}

func (p Phone) Kind() FieldKind { return FieldPhone }
func (p Phone) Value() string   { return p.value }
func (p Phone) String() string  { return p.value }

// Birthday is a calendar date. Only the year, month and day are kept.
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday parses value as YYYY-MM-DD and rejects dates that do not exist.
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{Field: FieldBirthday, Value: value, Rule: "birthday should use the YYYY-MM-DD format and be a real date"}
	}
	return Birthday{date: t, set: true}, nil
}

// BirthdayFromTime builds a Birthday from the calendar date of t in t's location.
func BirthdayFromTime(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), set: true}
}

func (b Birthday) Kind() FieldKind { return FieldBirthday }

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) IsZero() bool { return !b.set }

func (b Birthday) String() string {
	if !b.set {
		return ""
	}
	return b.date.Format(BirthdayLayout)
}

// NextOccurrence returns the first anniversary on or after the calendar date
// of today. A birthday falling on today is returned as today. February 29 is
// observed on February 28 in years that are not leap years.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	next := b.occurrenceIn(y)
	if start.After(next) {
		next = b.occurrenceIn(y + 1)
	}
	return next
}

// DaysUntil returns the number of whole days from today to NextOccurrence.
func (b Birthday) DaysUntil(today time.Time) int {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(b.NextOccurrence(today).Sub(start) / (24 * time.Hour))
}

func (b Birthday) occurrenceIn(year int) time.Time {
	m, d := b.date.Month(), b.date.Day()
	if m == time.February && d == 29 && !isLeapYear(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
