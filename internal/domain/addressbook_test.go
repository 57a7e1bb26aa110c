package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/addrbook/internal/domain"
)

func newRecord(t *testing.T, name string, phones ...string) *domain.Record {
	t.Helper()
	r, err := domain.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func names(recs []*domain.Record) []string {
	out := []string{}
	for _, r := range recs {
		out = append(out, r.Name().Value())
	}
	return out
}

func TestAddressBook_AddFindDelete(t *testing.T) {
	book := domain.NewAddressBook()
	john := newRecord(t, "John", "1234567890")
	book.AddRecord(john)

	got, ok := book.Find("John")
	require.True(t, ok)
	require.Same(t, john, got)

	_, ok = book.Find("john")
	require.False(t, ok, "lookup is case sensitive")
	_, ok = book.Find("Jo")
	require.False(t, ok, "lookup is exact")

	book.Delete("John")
	_, ok = book.Find("John")
	require.False(t, ok)
	require.Equal(t, 0, book.Len())

	book.Delete("John")
	book.Delete("Nobody")
	require.Equal(t, 0, book.Len())
}

func TestAddressBook_AddNilIsIgnored(t *testing.T) {
	book := domain.NewAddressBook()
	book.AddRecord(nil)
	require.Equal(t, 0, book.Len())
}

func TestAddressBook_OverwriteKeepsPosition(t *testing.T) {
	book := domain.NewAddressBook()
	book.AddRecord(newRecord(t, "John", "1111111111"))
	book.AddRecord(newRecord(t, "Jane"))

	replacement := newRecord(t, "John", "2222222222")
	book.AddRecord(replacement)
	book.AddRecord(replacement)

	require.Equal(t, 2, book.Len())
	require.Equal(t, []string{"John", "Jane"}, book.Names())

	got, _ := book.Find("John")
	require.Same(t, replacement, got)
}

func TestAddressBook_DeleteUpdatesOrder(t *testing.T) {
	book := domain.NewAddressBook()
	for _, n := range []string{"Ann", "Bob", "Cid"} {
		book.AddRecord(newRecord(t, n))
	}
	book.Delete("Bob")
	book.AddRecord(newRecord(t, "Bob"))
	require.Equal(t, []string{"Ann", "Cid", "Bob"}, names(book.Records()))
}

func TestAddressBook_IteratorBatchSizes(t *testing.T) {
	book := domain.NewAddressBook()
	for _, n := range []string{"Ann", "Bob", "Cid", "Dan", "Eve"} {
		book.AddRecord(newRecord(t, n))
	}

	it, err := book.Iterator(2)
	require.NoError(t, err)

	var sizes []int
	var seen []string
	for {
		batch, ok := it.Next()
		if !ok {
			break
		}
		sizes = append(sizes, len(batch))
		seen = append(seen, names(batch)...)
	}

	require.Equal(t, []int{2, 2, 1}, sizes)
	require.Equal(t, []string{"Ann", "Bob", "Cid", "Dan", "Eve"}, seen)

	_, ok := it.Next()
	require.False(t, ok, "exhausted iterator stays exhausted")
	require.Equal(t, 0, it.Remaining())
}

func TestAddressBook_IteratorSnapshot(t *testing.T) {
	book := domain.NewAddressBook()
	for _, n := range []string{"Ann", "Bob", "Cid"} {
		book.AddRecord(newRecord(t, n))
	}

	it, err := book.Iterator(1)
	require.NoError(t, err)

	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, []string{"Ann"}, names(first))

	book.Delete("Bob")
	book.AddRecord(newRecord(t, "Dan"))

	var rest []string
	for {
		batch, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, names(batch)...)
	}
	require.Equal(t, []string{"Bob", "Cid"}, rest)
}

func TestAddressBook_IteratorInvalidSize(t *testing.T) {
	book := domain.NewAddressBook()
	for _, size := range []int{0, -1} {
		it, err := book.Iterator(size)
		require.ErrorIs(t, err, domain.ErrInvalidBatchSize)
		require.True(t, domain.IsKind(err, domain.KindValidation))
		require.Nil(t, it)
	}
}

func TestAddressBook_IteratorEmptyBook(t *testing.T) {
	it, err := domain.NewAddressBook().Iterator(3)
	require.NoError(t, err)
	_, ok := it.Next()
	require.False(t, ok)
}

func TestAddressBook_Batches(t *testing.T) {
	book := domain.NewAddressBook()
	for _, n := range []string{"Ann", "Bob", "Cid", "Dan", "Eve"} {
		book.AddRecord(newRecord(t, n))
	}

	var sizes []int
	for batch := range book.Batches(2) {
		sizes = append(sizes, len(batch))
	}
	require.Equal(t, []int{2, 2, 1}, sizes)

	count := 0
	for range book.Batches(2) {
		count++
		break
	}
	require.Equal(t, 1, count)

	for range book.Batches(0) {
		t.Fatal("invalid batch size must yield nothing")
	}
}
