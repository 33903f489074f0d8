package core

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"relman/internal/ports"
	"relman/internal/types"
)

const coordinatesExample = "org.slf4j:slf4j-api:1.7.10"

// TieStore maps artifacts to their authoritative version. Exact ties are
// insert-once; group wildcard ties are last-write-wins. Ties are accepted
// until Freeze, after which the store is read-only and safe for concurrent
// lookups.
type TieStore struct {
	mu       sync.RWMutex
	exact    map[types.UnversionedArtifactName]types.VersionedArtifactName
	wildcard map[string]string
	frozen   atomic.Bool
}

func NewTieStore() *TieStore {
	return &TieStore{
		exact:    map[types.UnversionedArtifactName]types.VersionedArtifactName{},
		wildcard: map[string]string{},
	}
}

// Tie declares version as authoritative for groupID:artifactID, or for the
// whole group when artifactID is "*".
func (s *TieStore) Tie(groupID string, artifactID string, version string) error {
	if groupID == "" || artifactID == "" || version == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("tie requires group, artifact and version, got '%s:%s:%s'", groupID, artifactID, version))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen.Load() {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("ties are frozen, cannot tie %s:%s:%s", groupID, artifactID, version))
	}
	if artifactID == types.WildcardArtifact {
		s.wildcard[groupID] = version
		return nil
	}
	name := types.NewUnversionedArtifactName(groupID, artifactID)
	if existing, ok := s.exact[name]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("artifact %s has already been tied to version %s", name, existing.Version))
	}
	s.exact[name] = types.VersionedArtifactName{Name: name, Version: version}
	return nil
}

// TieCoordinates ties a "group:artifact:version" dependency string.
func (s *TieStore) TieCoordinates(coordinates string) error {
	groupID, artifactID, version, err := ParseCoordinates(coordinates)
	if err != nil {
		return err
	}
	return s.Tie(groupID, artifactID, version)
}

func (s *TieStore) LookupExact(name types.UnversionedArtifactName) (types.VersionedArtifactName, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tied, ok := s.exact[name]
	return tied, ok
}

func (s *TieStore) LookupWildcard(groupID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	version, ok := s.wildcard[groupID]
	return version, ok
}

// Freeze ends the configuration phase. It is safe to call more than once.
func (s *TieStore) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen.Store(true)
}

func (s *TieStore) Frozen() bool {
	return s.frozen.Load()
}

// ExactTies returns every exact tie ordered by artifact name.
func (s *TieStore) ExactTies() []types.VersionedArtifactName {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.SortedFunc(maps.Values(s.exact), types.VersionedArtifactName.Compare)
}

// WildcardTies returns a copy of the group ties.
func (s *TieStore) WildcardTies() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.wildcard)
}

func (s *TieStore) Counts() (exact int, wildcard int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exact), len(s.wildcard)
}

// ParseCoordinates splits a "group:artifact:version" string into exactly
// three non-empty fields.
func ParseCoordinates(coordinates string) (string, string, string, error) {
	parts := strings.Split(coordinates, ":")
	if len(parts) != 3 || slices.Contains(parts, "") {
		return "", "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("tied versions must be specified like a dependency, not like this: '%s' but rather like this: '%s'", coordinates, coordinatesExample))
	}
	return parts[0], parts[1], parts[2], nil
}

var _ ports.TieSinkPort = (*TieStore)(nil)
var _ ports.TieLookupPort = (*TieStore)(nil)
