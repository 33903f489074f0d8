package types

type DecisionKind string

const (
	DecisionUnchanged  DecisionKind = "unchanged"
	DecisionSubstitute DecisionKind = "substitute"
)

// Decision is the outcome of a single resolution request. Target holds the
// canonical dependency string to redirect to and is empty when unchanged.
type Decision struct {
	Kind   DecisionKind
	Target string
}

func Unchanged() Decision {
	return Decision{Kind: DecisionUnchanged}
}

func SubstituteTo(target string) Decision {
	return Decision{Kind: DecisionSubstitute, Target: target}
}

func (d Decision) Substitutes() bool {
	return d.Kind == DecisionSubstitute
}

// DependencyRequest is one module requested while resolving a project.
type DependencyRequest struct {
	Project   string
	Requested VersionedArtifactName
}

// ResolutionRecord captures what the substrate selected for a request.
type ResolutionRecord struct {
	Project   string
	Requested VersionedArtifactName
	Decision  Decision
	Forced    bool
	Selected  string
}

// TieLoadStats summarizes one delimited tie file load.
type TieLoadStats struct {
	Ties    int
	Skipped int
}
