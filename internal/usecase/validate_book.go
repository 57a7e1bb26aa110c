package usecase

import (
	"context"

	"github.com/aalvaropc/addrbook/internal/ports"
)

type ValidateBook struct {
	books ports.BookLoader
}

func NewValidateBook(bl ports.BookLoader) *ValidateBook {
	return &ValidateBook{books: bl}
}

// Execute loads the seed file without printing anything and returns how many
// distinct contacts it holds. The first invalid field is returned as an error.
func (uc *ValidateBook) Execute(ctx context.Context, bookPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	book, err := uc.books.LoadBook(bookPath)
	if err != nil {
		return 0, err
	}
	return book.Len(), nil
}
