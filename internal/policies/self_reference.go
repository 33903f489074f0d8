package policies

import (
	"strings"

	"relman/internal/types"
)

// SelfReferencePolicy recognizes project-to-project dependencies of the
// build itself: the group is the root project name and the artifact is a
// project of the tree. They are part of the run and never reported as
// untied.
type SelfReferencePolicy struct {
	RootName string
	projects map[string]struct{}
}

func NewSelfReferencePolicy(rootName string, projects []string) SelfReferencePolicy {
	policy := SelfReferencePolicy{
		RootName: strings.TrimSpace(rootName),
		projects: map[string]struct{}{},
	}
	for _, project := range projects {
		policy.projects[strings.TrimSpace(project)] = struct{}{}
	}
	return policy
}

func (p SelfReferencePolicy) Matches(dep types.VersionedArtifactName) bool {
	if p.RootName == "" || dep.GroupID() != p.RootName {
		return false
	}
	_, ok := p.projects[dep.ArtifactID()]
	return ok
}
