package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"relman/internal/adapters"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	forced, err := s.OutputReader.ReadForcedModules(filepath.Join(outputDir, adapters.ForcedModulesFile))
	if err != nil {
		return InspectResult{}, err
	}
	untied, err := s.OutputReader.ReadUntiedReport(filepath.Join(outputDir, adapters.UntiedReportFile))
	if err != nil {
		return InspectResult{}, err
	}
	records, err := s.OutputReader.ReadResolutionReport(filepath.Join(outputDir, adapters.ResolutionReportFile))
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		ForcedModules: forced,
		Untied:        untied,
		Records:       records,
	}
	for _, record := range records {
		if record.Decision.Substitutes() {
			result.Substituted++
		}
		if record.Forced {
			result.Forced++
		}
	}
	return result, nil
}
