package ports

import "github.com/aalvaropc/primer/internal/domain"

// WorkspaceInitializer scaffolds the files of a new workspace.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
