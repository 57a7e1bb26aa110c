package tui

import "github.com/aalvaropc/addrbook/internal/domain"

type bookLoadedMsg struct {
	path string
	book *domain.AddressBook
	err  error
}
