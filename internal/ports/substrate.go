package ports

import (
	"context"

	"relman/internal/types"
)

// ResolutionHook is invoked by the host once per requested module.
type ResolutionHook func(ctx context.Context, requested types.VersionedArtifactName) types.Decision

// HookTargetPort is the host project tree that resolution hooks attach to.
type HookTargetPort interface {
	Projects() []string
	AttachResolutionHook(project string, hook ResolutionHook) error
}

// ForceTargetPort is the host's "forced module versions" mechanism. The
// modules apply to every project of the tree.
type ForceTargetPort interface {
	ForceModules(ctx context.Context, modules []string) error
}
