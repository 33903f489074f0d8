package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"relman/internal/adapters"
	"relman/internal/core"
	"relman/internal/policies"
	"relman/internal/types"
)

const defaultResolveWorkers = 4

// Resolve runs one build run: configure ties, attach the resolution hook
// to every project, force the exact ties, then resolve every project's
// requests concurrently through the shared run context.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	config, baseDir, err := s.loadRunConfig(req.RunRequest)
	if err != nil {
		return ResolveResult{}, err
	}
	requests, err := parseRequests(config)
	if err != nil {
		return ResolveResult{}, err
	}

	handle := &core.RunHandle{}
	summary, err := s.configureTies(ctx, handle.Get(), config, baseDir, req.RunRequest)
	if err != nil {
		return ResolveResult{}, err
	}

	tree := adapters.NewProjectTreeAdapter(config.Root, projectNames(config))
	if _, err := handle.Get().EnsureInitialized(ctx, tree); err != nil {
		return ResolveResult{}, err
	}
	if _, err := handle.Get().EnsureForced(ctx, tree); err != nil {
		return ResolveResult{}, err
	}

	records, err := resolveProjects(ctx, tree, requests, req.Workers)
	if err != nil {
		return ResolveResult{}, err
	}

	run := handle.Get()
	policy := policies.NewSelfReferencePolicy(config.Root, tree.Projects())
	result := ResolveResult{
		Root:       config.Root,
		Projects:   tree.Projects(),
		Ties:       summary,
		Forced:     run.ForcedModules(),
		Records:    records,
		Untied:     run.Untied.All(),
		Reportable: core.Sorted(run.Untied.FilterOut(policy.Matches)),
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir != "" {
		output := adapters.NewOutputFileAdapter(outputDir)
		if err := output.WriteForcedModules(result.Forced); err != nil {
			return ResolveResult{}, err
		}
		if err := output.WriteUntiedReport(result.Untied); err != nil {
			return ResolveResult{}, err
		}
		if err := output.WriteResolutionReport(result.Records); err != nil {
			return ResolveResult{}, err
		}
		result.OutputDir = outputDir
	}
	log.Ctx(ctx).Debug().
		Int("requests", len(records)).
		Int("untied", len(result.Untied)).
		Int("forced", len(result.Forced)).
		Msg("run resolved")
	return result, nil
}

// resolveProjects resolves each project's requests in order, projects in
// parallel. Records come back grouped by project in tree order.
func resolveProjects(ctx context.Context, tree *adapters.ProjectTreeAdapter, requests [][]types.DependencyRequest, workers int) ([]types.ResolutionRecord, error) {
	if workers <= 0 {
		workers = defaultResolveWorkers
	}
	perProject := make([][]types.ResolutionRecord, len(requests))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, projectRequests := range requests {
		group.Go(func() error {
			records := make([]types.ResolutionRecord, 0, len(projectRequests))
			for _, request := range projectRequests {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				record, err := tree.Resolve(groupCtx, request.Project, request.Requested)
				if err != nil {
					return err
				}
				records = append(records, record)
			}
			perProject[i] = records
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var records []types.ResolutionRecord
	for _, projectRecords := range perProject {
		records = append(records, projectRecords...)
	}
	return records, nil
}
