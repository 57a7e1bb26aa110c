package yamlbook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aalvaropc/addrbook/internal/domain"
)

// MapBook validates every contact through the domain constructors. A later
// contact with an already seen name replaces the earlier one.
func MapBook(path string, yb YAMLBook, log *slog.Logger) (*domain.AddressBook, error) {
	book := domain.NewAddressBook()

	for i, c := range yb.Contacts {
		fieldPrefix := fmt.Sprintf("contacts[%d]", i)

		var opts []domain.RecordOption
		if bd := strings.TrimSpace(c.Birthday); bd != "" {
			b, err := domain.NewBirthday(bd)
			if err != nil {
				return nil, invalidField(path, fieldPrefix+".birthday", err)
			}
			opts = append(opts, domain.WithBirthday(b))
		}

		rec, err := domain.NewRecord(c.Name, opts...)
		if err != nil {
			return nil, invalidField(path, fieldPrefix+".name", err)
		}

		for j, p := range c.Phones {
			if err := rec.AddPhone(p); err != nil {
				return nil, invalidField(path, fmt.Sprintf("%s.phones[%d]", fieldPrefix, j), err)
			}
		}

		if _, dup := book.Find(c.Name); dup && log != nil {
			log.Warn("book.duplicate_name", "path", path, "field", fieldPrefix, "name", c.Name)
		}
		book.AddRecord(rec)
	}

	return book, nil
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "yamlbook.map",
		Kind: domain.KindValidation,
		Path: path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
