package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"relman/internal/ports"
	"relman/internal/types"
)

// Decide applies the tie rules to one requested module. Exact ties take
// precedence over group wildcard ties; a request matched by neither is
// recorded as untied and kept as requested.
func Decide(ctx context.Context, ties ports.TieLookupPort, untied ports.UntiedRecorderPort, requested types.VersionedArtifactName) types.Decision {
	if tied, ok := ties.LookupExact(requested.Name); ok {
		assert.NotEmpty(ctx, tied.Version, "exact tie must carry a version")
		if satisfiesExactTie(requested, tied) {
			return types.Unchanged()
		}
		log.Ctx(ctx).Debug().Str("requested", requested.Coordinates()).Str("target", tied.Coordinates()).Msg("exact tie applied")
		return types.SubstituteTo(tied.Coordinates())
	}

	if version, ok := ties.LookupWildcard(requested.GroupID()); ok {
		if requested.Version == version {
			return types.Unchanged()
		}
		target := types.NewVersionedArtifactName(requested.GroupID(), requested.ArtifactID(), version)
		log.Ctx(ctx).Debug().Str("requested", requested.Coordinates()).Str("target", target.Coordinates()).Msg("group tie applied")
		return types.SubstituteTo(target.Coordinates())
	}

	if untied.Record(requested) {
		log.Ctx(ctx).Debug().Str("requested", requested.Coordinates()).Msg("untied dependency recorded")
	}
	return types.Unchanged()
}

// satisfiesExactTie reports whether a request looked up under an exact tie
// is left alone. A request found by its own identity always shares group and
// artifact with the tie, so exact ties never redirect here and reach the
// resolution through the forced module set instead.
func satisfiesExactTie(requested types.VersionedArtifactName, tied types.VersionedArtifactName) bool {
	return requested.GroupID() != tied.GroupID() ||
		requested.ArtifactID() == tied.ArtifactID() ||
		requested.Version == tied.Version
}
