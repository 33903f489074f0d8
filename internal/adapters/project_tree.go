package adapters

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/samber/lo"

	"relman/internal/core"
	"relman/internal/ports"
	"relman/internal/types"
)

// ProjectTreeAdapter is an in-memory resolution substrate for a project
// tree. Every project resolves its requests through its attached hook,
// and modules forced for the run override the requested version of any
// request the hook left unchanged.
type ProjectTreeAdapter struct {
	root     string
	projects []string

	mu     sync.RWMutex
	hooks  map[string]ports.ResolutionHook
	forced map[types.UnversionedArtifactName]string
}

func NewProjectTreeAdapter(root string, projects []string) *ProjectTreeAdapter {
	return &ProjectTreeAdapter{
		root:     root,
		projects: lo.Uniq(lo.Compact(projects)),
		hooks:    map[string]ports.ResolutionHook{},
		forced:   map[types.UnversionedArtifactName]string{},
	}
}

func (a *ProjectTreeAdapter) Root() string {
	return a.root
}

func (a *ProjectTreeAdapter) Projects() []string {
	return slices.Clone(a.projects)
}

func (a *ProjectTreeAdapter) AttachResolutionHook(project string, hook ports.ResolutionHook) error {
	if !slices.Contains(a.projects, project) {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown project: %s", project))
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.hooks[project]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("resolution hook already attached to project: %s", project))
	}
	a.hooks[project] = hook
	return nil
}

func (a *ProjectTreeAdapter) ForceModules(_ context.Context, modules []string) error {
	forced := map[types.UnversionedArtifactName]string{}
	for _, module := range modules {
		groupID, artifactID, version, err := core.ParseCoordinates(module)
		if err != nil {
			return err
		}
		forced[types.NewUnversionedArtifactName(groupID, artifactID)] = version
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.forced = forced
	return nil
}

// Resolve runs one request of project through its resolution hook.
func (a *ProjectTreeAdapter) Resolve(ctx context.Context, project string, requested types.VersionedArtifactName) (types.ResolutionRecord, error) {
	a.mu.RLock()
	hook, ok := a.hooks[project]
	a.mu.RUnlock()
	if !ok {
		return types.ResolutionRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no resolution hook attached to project: %s", project))
	}

	decision := hook(ctx, requested)
	record := types.ResolutionRecord{
		Project:   project,
		Requested: requested,
		Decision:  decision,
		Selected:  requested.Coordinates(),
	}
	if decision.Substitutes() {
		record.Selected = decision.Target
		return record, nil
	}
	a.mu.RLock()
	version, forced := a.forced[requested.Name]
	a.mu.RUnlock()
	if forced {
		record.Forced = true
		record.Selected = types.VersionedArtifactName{Name: requested.Name, Version: version}.Coordinates()
	}
	return record, nil
}

var _ ports.HookTargetPort = (*ProjectTreeAdapter)(nil)
var _ ports.ForceTargetPort = (*ProjectTreeAdapter)(nil)
