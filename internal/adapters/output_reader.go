package adapters

import (
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"relman/internal/core"
	"relman/internal/ports"
	"relman/internal/types"
)

type OutputReaderAdapter struct{}

func NewOutputReaderAdapter() OutputReaderAdapter {
	return OutputReaderAdapter{}
}

func (a OutputReaderAdapter) ReadForcedModules(path string) ([]string, error) {
	lines, err := readLines(path, ForcedModulesFile)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if _, _, _, err := core.ParseCoordinates(line); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid forced.modules format").
				WithCause(err)
		}
	}
	return lines, nil
}

func (a OutputReaderAdapter) ReadUntiedReport(path string) ([]types.VersionedArtifactName, error) {
	lines, err := readLines(path, UntiedReportFile)
	if err != nil {
		return nil, err
	}
	var entries []types.VersionedArtifactName
	for _, line := range lines {
		entry, err := parseVersionedArtifact(line, "invalid untied.report format")
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (a OutputReaderAdapter) ReadResolutionReport(path string) ([]types.ResolutionRecord, error) {
	lines, err := readLines(path, ResolutionReportFile)
	if err != nil {
		return nil, err
	}
	var records []types.ResolutionRecord
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) != 6 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid resolution.report format")
		}
		requested, err := parseVersionedArtifact(parts[1], "invalid resolution.report format")
		if err != nil {
			return nil, err
		}
		forced, err := strconv.ParseBool(strings.TrimSpace(parts[4]))
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid resolution.report format").
				WithCause(err)
		}
		records = append(records, types.ResolutionRecord{
			Project:   strings.TrimSpace(parts[0]),
			Requested: requested,
			Decision: types.Decision{
				Kind:   types.DecisionKind(strings.TrimSpace(parts[2])),
				Target: strings.TrimSpace(parts[3]),
			},
			Forced:   forced,
			Selected: strings.TrimSpace(parts[5]),
		})
	}
	return records, nil
}

func readLines(path string, name string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(name + " not found").
			WithCause(err)
	}
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseVersionedArtifact(value string, msg string) (types.VersionedArtifactName, error) {
	groupID, artifactID, version, err := core.ParseCoordinates(strings.TrimSpace(value))
	if err != nil {
		return types.VersionedArtifactName{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg).
			WithCause(err)
	}
	return types.NewVersionedArtifactName(groupID, artifactID, version), nil
}

var _ ports.OutputReaderPort = OutputReaderAdapter{}
