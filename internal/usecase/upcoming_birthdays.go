package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/ports"
)

// UpcomingBirthday is one line of the birthdays report.
type UpcomingBirthday struct {
	Name     string    `json:"name"`
	Birthday string    `json:"birthday"`
	Next     time.Time `json:"next"`
	DaysLeft int       `json:"days_left"`
}

type UpcomingBirthdays struct {
	books ports.BookLoader
	now   func() time.Time
}

type BirthdaysOption func(*UpcomingBirthdays)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) BirthdaysOption {
	return func(uc *UpcomingBirthdays) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewUpcomingBirthdays(bl ports.BookLoader, opts ...BirthdaysOption) *UpcomingBirthdays {
	uc := &UpcomingBirthdays{
		books: bl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute lists contacts whose next birthday is at most withinDays away,
// soonest first and then by name. A birthday today is 0 days away.
func (uc *UpcomingBirthdays) Execute(ctx context.Context, bookPath string, withinDays int) ([]UpcomingBirthday, error) {
	if withinDays < 0 {
		return nil, &domain.OpError{
			Op:   "contacts.birthdays",
			Kind: domain.KindValidation,
			Err:  domain.ErrInvalidConfig,
		}
	}

	book, err := uc.books.LoadBook(bookPath)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	out := []UpcomingBirthday{}
	for _, rec := range book.Records() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		days, ok := rec.DaysToBirthday(today)
		if !ok || days > withinDays {
			continue
		}
		b, _ := rec.Birthday()
		out = append(out, UpcomingBirthday{
			Name:     rec.Name().Value(),
			Birthday: b.String(),
			Next:     b.NextOccurrence(today),
			DaysLeft: days,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysLeft != out[j].DaysLeft {
			return out[i].DaysLeft < out[j].DaysLeft
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
