package usecase

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace at root and returns its absolute path.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		return "", err
	}
	return abs, nil
}
