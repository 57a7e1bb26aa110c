package usecase

import (
	"testing"

	"github.com/aalvaropc/addrbook/internal/domain"
)

type fakeBookLoader struct {
	book  *domain.AddressBook
	paths []string
}

func (f *fakeBookLoader) LoadBook(path string) (*domain.AddressBook, error) {
	f.paths = append(f.paths, path)
	if f.book == nil {
		return domain.NewAddressBook(), nil
	}
	return f.book, nil
}

type errBookLoader struct{ err error }

func (e errBookLoader) LoadBook(string) (*domain.AddressBook, error) {
	return nil, e.err
}

type contactSeed struct {
	name     string
	birthday string
	phones   []string
}

func seedBook(t *testing.T, seeds ...contactSeed) *domain.AddressBook {
	t.Helper()
	book := domain.NewAddressBook()
	for _, s := range seeds {
		var opts []domain.RecordOption
		if s.birthday != "" {
			b, err := domain.NewBirthday(s.birthday)
			if err != nil {
				t.Fatalf("birthday %q: %v", s.birthday, err)
			}
			opts = append(opts, domain.WithBirthday(b))
		}
		r, err := domain.NewRecord(s.name, opts...)
		if err != nil {
			t.Fatalf("record %q: %v", s.name, err)
		}
		for _, p := range s.phones {
			if err := r.AddPhone(p); err != nil {
				t.Fatalf("phone %q: %v", p, err)
			}
		}
		book.AddRecord(r)
	}
	return book
}
