package ports

// WorkspaceLocator finds an addrbook workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
