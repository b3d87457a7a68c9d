package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"mediad/internal/core"
)

// ListDeps probes every dependency and renders the report.
func (s Service) ListDeps(ctx context.Context, req ListDepsRequest) (ListDepsResult, error) {
	probes := req.Probes
	if probes == nil {
		defaults, err := core.DefaultProbes(ctx, s.probeSources())
		if err != nil {
			return ListDepsResult{}, err
		}
		probes = defaults
	}
	facts, err := core.Collect(ctx, probes)
	if err != nil {
		return ListDepsResult{}, err
	}
	log.Ctx(ctx).Debug().Int("dependencies", len(facts)).Msg("dependency report built")
	return ListDepsResult{
		Facts:  facts,
		Report: core.Render(facts),
	}, nil
}
