package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadBook(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Books == nil {
			return bookLoadedMsg{path: deps.BookPath, err: errors.New("BookLoader is nil")}
		}
		book, err := deps.Books.LoadBook(deps.BookPath)
		return bookLoadedMsg{path: deps.BookPath, book: book, err: err}
	}
}
