package usecase

import (
	"errors"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

// InitWorkspace scaffolds a primer workspace through a WorkspaceInitializer.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute creates the workspace at root. Existing files are kept unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
