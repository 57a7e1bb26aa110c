package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/addrbook/internal/domain"
	"github.com/aalvaropc/addrbook/internal/infra/logger"
	"github.com/aalvaropc/addrbook/internal/infra/workspacefinder"
	"github.com/aalvaropc/addrbook/internal/infra/yamlbook"
	"github.com/aalvaropc/addrbook/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	books ports.BookLoader
	log   *slog.Logger

	cleanup func() error
}

// loadWorkspace resolves the workspace root, reads addrbook.yaml and starts
// the file logger. A missing addrbook.yaml is not an error: defaults apply
// and the working directory acts as root.
func loadWorkspace(opts *globalOptions) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	cleanup, logErr := logger.Setup(logger.Config{
		Root:  root,
		Dir:   cfg.Logging.Dir,
		Debug: opts.debug,
	})
	log := logger.L()
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", logErr)
	}
	log.Debug("workspace.loaded", "root", root, "book", cfg.Defaults.Book)

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		books:   yamlbook.NewLoader(yamlbook.WithLogger(log)),
		log:     log,
		cleanup: cleanup,
	}, nil
}

func (ws *workspaceCtx) close() {
	if ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var finderOpts []workspacefinder.FinderOption
	if home, herr := os.UserHomeDir(); herr == nil {
		finderOpts = append(finderOpts, workspacefinder.WithStopAt(home))
	}
	locator := workspacefinder.NewFinder(finderOpts...)
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return filepath.Abs(wd)
		}
		return "", err
	}
	return root, nil
}

// resolveBookPath picks the seed file: the --file flag wins, relative paths
// resolve against the workspace root.
func resolveBookPath(ws *workspaceCtx, fileFlag string) string {
	p := strings.TrimSpace(fileFlag)
	if p == "" {
		p = ws.cfg.Defaults.Book
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(ws.root, p)
	}
	return filepath.Clean(p)
}
