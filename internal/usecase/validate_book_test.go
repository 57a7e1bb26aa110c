package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateBook_CountsContacts(t *testing.T) {
	loader := &fakeBookLoader{book: seedBook(t, contactSeed{name: "Ann"}, contactSeed{name: "Bob"})}

	n, err := NewValidateBook(loader).Execute(context.Background(), "book.yaml")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestValidateBook_PropagatesLoaderError(t *testing.T) {
	loadErr := errors.New("contacts[0].name: invalid")
	_, err := NewValidateBook(errBookLoader{err: loadErr}).Execute(context.Background(), "book.yaml")
	require.ErrorIs(t, err, loadErr)
}

func TestValidateBook_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewValidateBook(&fakeBookLoader{}).Execute(ctx, "book.yaml")
	require.ErrorIs(t, err, context.Canceled)
}
