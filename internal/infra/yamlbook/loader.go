package yamlbook

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/ports"
)

type Loader struct {
	log *slog.Logger
}

type Option func(*Loader)

// WithLogger routes load events and duplicate-name warnings to l.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.BookLoader = (*Loader)(nil)

func (l *Loader) LoadBook(path string) (*domain.AddressBook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbook.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yb YAMLBook
	if err := yaml.Unmarshal(b, &yb); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbook.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	book, err := MapBook(path, yb, l.log)
	if err != nil {
		l.log.Error("book.invalid", "path", path, "error", err.Error())
		return nil, err
	}

	l.log.Info("book.loaded", "path", path, "contacts", book.Len())
	return book, nil
}
