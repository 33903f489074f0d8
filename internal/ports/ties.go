package ports

import (
	"context"

	"relman/internal/types"
)

// TieSinkPort accepts ties during the configuration phase.
type TieSinkPort interface {
	Tie(groupID string, artifactID string, version string) error
}

// TieLookupPort answers the two questions the resolution decision asks.
type TieLookupPort interface {
	LookupExact(name types.UnversionedArtifactName) (types.VersionedArtifactName, bool)
	LookupWildcard(groupID string) (string, bool)
}

// TieFilePort bulk-loads ties from a delimited text file into a sink.
type TieFilePort interface {
	Load(ctx context.Context, path string, sink TieSinkPort) (types.TieLoadStats, error)
}

// UntiedRecorderPort receives every request no tie applied to.
type UntiedRecorderPort interface {
	Record(untied types.VersionedArtifactName) bool
}
