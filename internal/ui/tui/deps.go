package tui

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/addrbook/internal/ports"
)

// Deps wires the browser to the loader and workspace defaults.
type Deps struct {
	Books     ports.BookLoader
	BookPath  string
	BatchSize int

	Logger *slog.Logger
	Now    func() time.Time
}
