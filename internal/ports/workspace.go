package ports

import "github.com/aalvaropc/libcoords/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
