package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/ports"
)

type ShowContact struct {
	books ports.BookLoader
}

func NewShowContact(bl ports.BookLoader) *ShowContact {
	return &ShowContact{books: bl}
}

// Execute returns the record stored under the exact name.
func (uc *ShowContact) Execute(ctx context.Context, bookPath, name string) (*domain.Record, error) {
	book, err := uc.books.LoadBook(bookPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, ok := book.Find(name)
	if !ok {
		return nil, &domain.OpError{
			Op:   "contacts.show",
			Kind: domain.KindNotFound,
			Path: bookPath,
			Err:  fmt.Errorf("contact %q: %w", name, domain.ErrNotFound),
		}
	}
	return rec, nil
}
