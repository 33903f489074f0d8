package core

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"relman/internal/ports"
	"relman/internal/types"
)

// UntiedLedger is the run-wide, first-seen ordered set of requests that no
// tie applied to. Record is safe for concurrent use.
type UntiedLedger struct {
	mu      sync.Mutex
	seen    map[types.VersionedArtifactName]struct{}
	entries []types.VersionedArtifactName
}

func NewUntiedLedger() *UntiedLedger {
	return &UntiedLedger{seen: map[types.VersionedArtifactName]struct{}{}}
}

// Record adds untied unless an equal entry is already present and reports
// whether it was added.
func (l *UntiedLedger) Record(untied types.VersionedArtifactName) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[untied]; ok {
		return false
	}
	l.seen[untied] = struct{}{}
	l.entries = append(l.entries, untied)
	return true
}

// All returns a copy of the entries in first-seen order.
func (l *UntiedLedger) All() []types.VersionedArtifactName {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

func (l *UntiedLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// FilterOut returns the entries in first-seen order minus those matching
// exclude.
func (l *UntiedLedger) FilterOut(exclude func(types.VersionedArtifactName) bool) []types.VersionedArtifactName {
	return lo.Reject(l.All(), func(entry types.VersionedArtifactName, _ int) bool {
		return exclude(entry)
	})
}

// Sorted returns a copy of the entries ordered by artifact name and version.
func Sorted(entries []types.VersionedArtifactName) []types.VersionedArtifactName {
	ordered := slices.Clone(entries)
	slices.SortFunc(ordered, types.VersionedArtifactName.Compare)
	return ordered
}

var _ ports.UntiedRecorderPort = (*UntiedLedger)(nil)
