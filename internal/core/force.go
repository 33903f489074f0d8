package core

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"relman/internal/ports"
	"relman/internal/types"
)

// ComputeForceSet renders every exact tie as a canonical dependency string.
// Group wildcard ties cannot be forced and are left out.
func ComputeForceSet(store *TieStore) []string {
	forced := lo.Uniq(lo.Map(store.ExactTies(), func(tie types.VersionedArtifactName, _ int) string {
		return tie.Coordinates()
	}))
	slices.Sort(forced)
	return forced
}

type forceState int32

const (
	notForced forceState = iota
	forced
)

// ForceApplier pushes a force set into the resolution substrate exactly
// once per run.
type ForceApplier struct {
	state  atomic.Int32
	mu     sync.RWMutex
	forced []string
}

// Apply hands forceSet to target on the first call. Later calls are logged
// and ignored, leaving the first force set in place. A target failure is
// returned and still consumes the single transition.
func (a *ForceApplier) Apply(ctx context.Context, forceSet []string, target ports.ForceTargetPort) (bool, error) {
	if !a.state.CompareAndSwap(int32(notForced), int32(forced)) {
		log.Ctx(ctx).Error().Int("modules", len(forceSet)).Msg("versions already forced for this run")
		return false, nil
	}
	a.mu.Lock()
	a.forced = slices.Clone(forceSet)
	a.mu.Unlock()

	if err := target.ForceModules(ctx, forceSet); err != nil {
		return true, err
	}
	log.Ctx(ctx).Debug().Int("modules", len(forceSet)).Msg("versions forced")
	return true, nil
}

func (a *ForceApplier) IsForced() bool {
	return forceState(a.state.Load()) == forced
}

// Forced returns the force set applied by the first Apply call.
func (a *ForceApplier) Forced() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.forced)
}
