package core

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"relman/internal/ports"
	"relman/internal/types"
)

// RunContext is the state shared by every project of one build run: the
// tie store, the untied ledger and the two one-shot lifecycle transitions.
type RunContext struct {
	Ties   *TieStore
	Untied *UntiedLedger

	initialized atomic.Bool
	forcer      ForceApplier
}

func NewRunContext() *RunContext {
	return &RunContext{
		Ties:   NewTieStore(),
		Untied: NewUntiedLedger(),
	}
}

// Resolve is the resolution hook attached to every project.
func (r *RunContext) Resolve(ctx context.Context, requested types.VersionedArtifactName) types.Decision {
	return Decide(ctx, r.Ties, r.Untied, requested)
}

// EnsureInitialized attaches the resolution hook to every project of
// target. Only the first call does anything; it reports whether it ran.
func (r *RunContext) EnsureInitialized(ctx context.Context, target ports.HookTargetPort) (bool, error) {
	if !r.initialized.CompareAndSwap(false, true) {
		log.Ctx(ctx).Warn().Msg("resolution hooks already initialized for this run")
		return false, nil
	}
	for _, project := range target.Projects() {
		if err := target.AttachResolutionHook(project, r.Resolve); err != nil {
			return true, err
		}
	}
	log.Ctx(ctx).Debug().Int("projects", len(target.Projects())).Msg("resolution hooks attached")
	return true, nil
}

func (r *RunContext) Initialized() bool {
	return r.initialized.Load()
}

// EnsureForced ends the configuration phase and forces every exact tie
// into target, once per run.
func (r *RunContext) EnsureForced(ctx context.Context, target ports.ForceTargetPort) (bool, error) {
	if r.forcer.IsForced() {
		log.Ctx(ctx).Error().Msg("versions already forced for this run")
		return false, nil
	}
	r.Ties.Freeze()
	return r.forcer.Apply(ctx, ComputeForceSet(r.Ties), target)
}

func (r *RunContext) Forced() bool {
	return r.forcer.IsForced()
}

// ForcedModules returns the force set applied for this run.
func (r *RunContext) ForcedModules() []string {
	return r.forcer.Forced()
}

// RunHandle hands out a single RunContext, created on first access.
type RunHandle struct {
	once sync.Once
	run  *RunContext
}

func (h *RunHandle) Get() *RunContext {
	h.once.Do(func() {
		h.run = NewRunContext()
	})
	return h.run
}
