package types

import (
	"cmp"
	"fmt"
)

// WildcardArtifact ties every artifact of a group to one version.
const WildcardArtifact = "*"

// UnversionedArtifactName identifies an artifact regardless of its version.
type UnversionedArtifactName struct {
	GroupID    string
	ArtifactID string
}

func NewUnversionedArtifactName(groupID string, artifactID string) UnversionedArtifactName {
	return UnversionedArtifactName{GroupID: groupID, ArtifactID: artifactID}
}

func (n UnversionedArtifactName) String() string {
	return fmt.Sprintf("%s:%s", n.GroupID, n.ArtifactID)
}

// Compare orders names by group, then artifact.
func (n UnversionedArtifactName) Compare(other UnversionedArtifactName) int {
	if c := cmp.Compare(n.GroupID, other.GroupID); c != 0 {
		return c
	}
	return cmp.Compare(n.ArtifactID, other.ArtifactID)
}

// VersionedArtifactName is an artifact pinned to a single version.
type VersionedArtifactName struct {
	Name    UnversionedArtifactName
	Version string
}

func NewVersionedArtifactName(groupID string, artifactID string, version string) VersionedArtifactName {
	return VersionedArtifactName{
		Name:    NewUnversionedArtifactName(groupID, artifactID),
		Version: version,
	}
}

func (v VersionedArtifactName) GroupID() string {
	return v.Name.GroupID
}

func (v VersionedArtifactName) ArtifactID() string {
	return v.Name.ArtifactID
}

// Coordinates renders the canonical "group:artifact:version" dependency string.
func (v VersionedArtifactName) Coordinates() string {
	return fmt.Sprintf("%s:%s:%s", v.Name.GroupID, v.Name.ArtifactID, v.Version)
}

func (v VersionedArtifactName) String() string {
	return v.Coordinates()
}

// Compare orders by name, then by the plain version string.
func (v VersionedArtifactName) Compare(other VersionedArtifactName) int {
	if c := v.Name.Compare(other.Name); c != 0 {
		return c
	}
	return cmp.Compare(v.Version, other.Version)
}
