package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"relman/internal/core"
	"relman/internal/types"
)

// loadRunConfig reads the config file, when given, and applies request
// overrides. It returns the directory config-relative tie files resolve
// against.
func (s Service) loadRunConfig(req RunRequest) (types.RunConfig, string, error) {
	config := types.RunConfig{}
	baseDir := "."
	configPath := strings.TrimSpace(req.ConfigPath)
	if configPath != "" {
		loaded, err := s.ConfigLoader.LoadRunConfig(configPath)
		if err != nil {
			return types.RunConfig{}, "", err
		}
		config = loaded
		baseDir = filepath.Dir(configPath)
	}
	if root := strings.TrimSpace(req.Root); root != "" {
		config.Root = root
	}
	if err := validateRunConfig(config); err != nil {
		return types.RunConfig{}, "", err
	}
	return config, baseDir, nil
}

// reportFieldBreakers cannot appear in a resolution.report field.
const reportFieldBreakers = ",\r\n"

func validateRunConfig(config types.RunConfig) error {
	seen := map[string]struct{}{}
	for _, project := range config.Projects {
		name := strings.TrimSpace(project.Name)
		if name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("project name must be set")
		}
		if strings.ContainsAny(name, reportFieldBreakers) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("project name must not contain ',' or line breaks: %q", name))
		}
		if _, ok := seen[name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate project: %s", name))
		}
		seen[name] = struct{}{}
	}
	return nil
}

// configureTies runs the configuration phase: config ties, config tie
// files, then the request's tie files and ties, in that order.
func (s Service) configureTies(ctx context.Context, run *core.RunContext, config types.RunConfig, baseDir string, req RunRequest) (TieSummary, error) {
	summary := TieSummary{}
	for _, coordinates := range config.Ties {
		if err := tieCoordinates(run, coordinates); err != nil {
			return summary, err
		}
	}

	var files []string
	for _, file := range config.TieFiles {
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		files = append(files, file)
	}
	files = append(files, req.TieFiles...)
	for _, file := range files {
		stats, err := s.TieFiles.Load(ctx, file, run.Ties)
		if err != nil {
			return summary, err
		}
		summary.FileTies += stats.Ties
		summary.SkippedLines += stats.Skipped
	}

	for _, coordinates := range req.Ties {
		if err := tieCoordinates(run, coordinates); err != nil {
			return summary, err
		}
	}
	summary.ExactTies, summary.WildcardTies = run.Ties.Counts()
	log.Ctx(ctx).Debug().
		Int("exact", summary.ExactTies).
		Int("wildcard", summary.WildcardTies).
		Int("skipped_lines", summary.SkippedLines).
		Msg("ties configured")
	return summary, nil
}

func tieCoordinates(run *core.RunContext, coordinates string) error {
	coordinates = strings.TrimSpace(coordinates)
	if strings.ContainsAny(coordinates, reportFieldBreakers) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("tie must not contain ',' or line breaks: %q", coordinates))
	}
	return run.Ties.TieCoordinates(coordinates)
}

func projectNames(config types.RunConfig) []string {
	names := make([]string, 0, len(config.Projects))
	for _, project := range config.Projects {
		names = append(names, strings.TrimSpace(project.Name))
	}
	return names
}

func parseRequests(config types.RunConfig) ([][]types.DependencyRequest, error) {
	requests := make([][]types.DependencyRequest, 0, len(config.Projects))
	for _, project := range config.Projects {
		name := strings.TrimSpace(project.Name)
		parsed := make([]types.DependencyRequest, 0, len(project.Requests))
		for _, raw := range project.Requests {
			groupID, artifactID, version, err := core.ParseCoordinates(strings.TrimSpace(raw))
			if err == nil && strings.ContainsAny(strings.TrimSpace(raw), reportFieldBreakers) {
				err = errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("coordinates must not contain ',' or line breaks")
			}
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid request '%s' in project %s", raw, name)).
					WithCause(err)
			}
			parsed = append(parsed, types.DependencyRequest{
				Project:   name,
				Requested: types.NewVersionedArtifactName(groupID, artifactID, version),
			})
		}
		requests = append(requests, parsed)
	}
	return requests, nil
}
