package ports

import "relman/internal/types"

type OutputPort interface {
	WriteForcedModules(modules []string) error
	WriteUntiedReport(untied []types.VersionedArtifactName) error
	WriteResolutionReport(records []types.ResolutionRecord) error
}

type OutputReaderPort interface {
	ReadForcedModules(path string) ([]string, error)
	ReadUntiedReport(path string) ([]types.VersionedArtifactName, error)
	ReadResolutionReport(path string) ([]types.ResolutionRecord, error)
}
