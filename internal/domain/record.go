package domain

import (
	"slices"
	"strings"
	"time"
)

// Record is a single contact: a mandatory name, an ordered list of phones and
// an optional birthday. Phones keep append order and may repeat.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// RecordOption configures a Record at construction time.
type RecordOption func(*Record)

// WithBirthday attaches an already validated birthday. A zero Birthday is ignored.
func WithBirthday(b Birthday) RecordOption {
	return func(r *Record) {
		if !b.IsZero() {
			r.birthday = b
		}
	}
}

func NewRecord(name string, opts ...RecordOption) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	r := &Record{
		name:   n,
		phones: []Phone{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to raw. Removing an unknown phone is a no-op.
func (r *Record) RemovePhone(raw string) {
	r.phones = slices.DeleteFunc(r.phones, func(p Phone) bool { return p.value == raw })
}

// EditPhone replaces every occurrence of oldRaw with a single newRaw appended
// at the end of the list. The list is left untouched when oldRaw is missing or
// newRaw is invalid.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if _, ok := r.FindPhone(oldRaw); !ok {
		return &PhoneNotFoundError{Contact: r.name.value, Phone: oldRaw}
	}

	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}

	r.RemovePhone(oldRaw)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// DaysToBirthday returns the days from today until the next birthday, and
// false when the record has no birthday. See Birthday.NextOccurrence for the
// same-day and February 29 rules.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.birthday.IsZero() {
		return 0, false
	}
	return r.birthday.DaysUntil(today), true
}

func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Contact name: ")
	b.WriteString(r.name.value)
	b.WriteString(", phones: ")
	for i, p := range r.phones {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.value)
	}
	if !r.birthday.IsZero() {
		b.WriteString(", birthday: ")
		b.WriteString(r.birthday.String())
	}
	return b.String()
}
