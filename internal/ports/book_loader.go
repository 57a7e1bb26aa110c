package ports

import "github.com/aalvaropc/addrbook/internal/domain"

// BookLoader builds an address book from a seed source (e.g., a YAML file).
type BookLoader interface {
	LoadBook(path string) (*domain.AddressBook, error)
}
