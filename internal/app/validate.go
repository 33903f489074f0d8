package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"relman/internal/core"
)

// Validate runs the configuration phase only, surfacing duplicate and
// malformed ties without resolving anything.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	config, baseDir, err := s.loadRunConfig(req.RunRequest)
	if err != nil {
		return ValidateResult{}, err
	}
	if _, err := parseRequests(config); err != nil {
		return ValidateResult{}, err
	}
	summary, err := s.configureTies(ctx, core.NewRunContext(), config, baseDir, req.RunRequest)
	if err != nil {
		return ValidateResult{}, err
	}
	log.Ctx(ctx).Debug().Str("root", config.Root).Msg("run config validated")
	return ValidateResult{
		Root:     config.Root,
		Projects: len(config.Projects),
		Ties:     summary,
	}, nil
}
