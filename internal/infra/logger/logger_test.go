package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONLogUnderRoot(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	require.NoError(t, err)
	require.NoError(t, IsReady())

	want := filepath.Join(root, ".addrbook", "logs", "addrbook.log")
	require.Equal(t, want, Path())

	L().Debug("book.loaded", "contacts", 2)
	require.NoError(t, cleanup())

	b, err := os.ReadFile(want)
	require.NoError(t, err)
	out := string(b)
	require.True(t, strings.Contains(out, `"msg":"logger.initialized"`), out)
	require.True(t, strings.Contains(out, `"msg":"book.loaded"`), out)

	require.Error(t, IsReady())
	require.Empty(t, Path())
}

func TestSetup_CustomDir(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Dir: "var/log"})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	require.Equal(t, filepath.Join(root, "var", "log", "addrbook.log"), Path())
}

func TestSetup_FailureFallsBackToDiscard(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cleanup, err := Setup(Config{Root: root, Dir: "blocked/logs"})
	require.Error(t, err)
	require.Nil(t, cleanup)
	require.Error(t, IsReady())

	// Discard logger must still be usable.
	L().Info("ignored")
}

func TestFilePath(t *testing.T) {
	require.Equal(t, filepath.Join("ws", ".addrbook", "logs", "addrbook.log"), FilePath(Config{Root: "ws"}))
	require.Equal(t, filepath.Join(".", ".addrbook", "logs", "addrbook.log"), FilePath(Config{}))

	abs := filepath.Join(t.TempDir(), "logs")
	require.Equal(t, filepath.Join(abs, "addrbook.log"), FilePath(Config{Root: "ignored", Dir: abs}))
}
