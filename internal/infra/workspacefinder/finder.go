package workspacefinder

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/ports"
)

var _ ports.WorkspaceLocator = (*Finder)(nil)

// Finder locates a workspace root by looking for the config file in the
// start directory and each of its parents.
type Finder struct {
	configFile string
	stopAt     string
}

type FinderOption func(*Finder)

// WithConfigFile overrides the marker file name.
func WithConfigFile(name string) FinderOption {
	return func(f *Finder) { f.configFile = name }
}

// WithStopAt bounds the upward search; dir itself is still checked.
func WithStopAt(dir string) FinderOption {
	return func(f *Finder) { f.stopAt = filepath.Clean(dir) }
}

func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{configFile: ConfigFileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("startDir is empty")}
	}

	cur, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	if info, statErr := os.Stat(cur); statErr == nil && !info.IsDir() {
		cur = filepath.Dir(cur)
	}

	for dir := range parents(cur) {
		if _, err := os.Stat(filepath.Join(dir, f.configFile)); err == nil {
			return dir, nil
		}
		if f.stopAt != "" && dir == f.stopAt {
			break
		}
	}

	return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: startDir, Err: domain.ErrNotFound}
}

// parents yields dir and then every ancestor up to the filesystem root.
func parents(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		cur := filepath.Clean(dir)
		for {
			if !yield(cur) {
				return
			}
			next := filepath.Dir(cur)
			if next == cur {
				return
			}
			cur = next
		}
	}
}
