package ports

import "github.com/aalvaropc/addrbook/internal/domain"

type WorkspaceInitializer interface {
	Init(ws domain.WorkspaceSpec, force bool) error
}
