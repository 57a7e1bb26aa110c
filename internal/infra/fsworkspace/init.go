package fsworkspace

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/ports"
)

const gitignoreHeader = "# addrbook"

var gitignoreEntries = []string{".addrbook/"}

type Initializer struct {
	log *slog.Logger
}

type Option func(*Initializer)

func WithLogger(l *slog.Logger) Option {
	return func(i *Initializer) {
		if l != nil {
			i.log = l
		}
	}
}

func NewInitializer(opts ...Option) *Initializer {
	i := &Initializer{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes the sample workspace under ws.Root. Existing files are kept
// unless force is set.
func (i *Initializer) Init(ws domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(ws.Root)

	logDir := filepath.Join(root, filepath.FromSlash(domain.DefaultConfig().Logging.Dir))
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return initError(logDir, err)
	}

	if err := ensureGitignore(root); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		dst := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "templates/")))
		return i.writeTemplate(p, dst, force)
	})
}

func (i *Initializer) writeTemplate(src, dst string, force bool) error {
	if _, err := os.Stat(dst); err == nil && !force {
		i.log.Info("workspace.file_kept", "path", dst)
		return nil
	}

	b, err := fs.ReadFile(templatesFS, src)
	if err != nil {
		return initError(src, err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return initError(dst, err)
	}
	i.log.Info("workspace.file_written", "path", dst)
	return nil
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

// ensureGitignore appends the addrbook block to root/.gitignore, creating the
// file when needed. Entries already present are not repeated.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	lines := strings.Split(string(existing), "\n")
	has := func(entry string) bool {
		return slices.ContainsFunc(lines, func(l string) bool { return strings.TrimSpace(l) == entry })
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !has(e) {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out bytes.Buffer
	out.Write(existing)
	if len(existing) > 0 {
		if !bytes.HasSuffix(existing, []byte("\n")) {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	if !has(gitignoreHeader) {
		out.WriteString(gitignoreHeader + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}
	return os.WriteFile(path, out.Bytes(), 0o644)
}
