package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config controls where the log file lives. Dir is relative to Root unless absolute.
type Config struct {
	Root  string
	Dir   string
	Debug bool
}

const (
	defaultDir  = ".addrbook/logs"
	logFileName = "addrbook.log"
)

// sink is the open log file behind the package logger.
type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu      sync.RWMutex
	current = discardSink()
)

func discardSink() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Setup points the package logger at <Root>/<Dir>/addrbook.log and returns a
// cleanup func that closes the file. On failure the logger discards everything.
func Setup(cfg Config) (func() error, error) {
	path := FilePath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		swap(discardSink())
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discardSink())
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))
	swap(sink{log: l, file: f, path: path})

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		old := swap(discardSink())
		if old.file == nil {
			return nil
		}
		return old.file.Close()
	}, nil
}

// FilePath resolves the log file location for cfg without touching the disk.
func FilePath(cfg Config) string {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Clean(root), filepath.FromSlash(dir))
	}
	return filepath.Join(dir, logFileName)
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

func swap(next sink) sink {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = next
	return prev
}

// L returns the current logger. It is safe to call before Setup.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Path returns the open log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.path
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if current.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}
