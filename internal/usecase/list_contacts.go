package usecase

import (
	"context"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/ports"
)

// BatchVisitor receives each batch with its zero-based index. Returning an
// error stops the listing.
type BatchVisitor func(index int, batch []*domain.Record) error

type ListContacts struct {
	books ports.BookLoader
}

func NewListContacts(bl ports.BookLoader) *ListContacts {
	return &ListContacts{books: bl}
}

// Execute loads the book at bookPath and hands its records to visit in
// batches of batchSize, in book order.
func (uc *ListContacts) Execute(ctx context.Context, bookPath string, batchSize int, visit BatchVisitor) error {
	book, err := uc.books.LoadBook(bookPath)
	if err != nil {
		return err
	}

	it, err := book.Iterator(batchSize)
	if err != nil {
		return err
	}

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch, ok := it.Next()
		if !ok {
			return nil
		}
		if err := visit(i, batch); err != nil {
			return err
		}
	}
}
