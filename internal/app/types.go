package app

import "relman/internal/types"

// RunRequest describes where the ties and the project tree of a run come
// from. Ties and TieFiles are applied after those of the config file.
type RunRequest struct {
	ConfigPath string
	Root       string
	Ties       []string
	TieFiles   []string
	Workers    int
}

type TieSummary struct {
	ExactTies    int
	WildcardTies int
	FileTies     int
	SkippedLines int
}

type ValidateRequest struct {
	RunRequest
}

type ValidateResult struct {
	Root     string
	Projects int
	Ties     TieSummary
}

type ResolveRequest struct {
	RunRequest
	OutputDir string
}

type ResolveResult struct {
	Root     string
	Projects []string
	Ties     TieSummary
	Forced   []string
	Records  []types.ResolutionRecord
	// Untied is the full ledger in first-seen order.
	Untied []types.VersionedArtifactName
	// Reportable is Untied without self project references, sorted.
	Reportable []types.VersionedArtifactName
	OutputDir  string
}

type UntiedRequest struct {
	RunRequest
}

type UntiedResult struct {
	Untied []types.VersionedArtifactName
}

type InspectRequest struct {
	OutputDir string
}

type InspectResult struct {
	ForcedModules []string
	Untied        []types.VersionedArtifactName
	Records       []types.ResolutionRecord
	Substituted   int
	Forced        int
}
