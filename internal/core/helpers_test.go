package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mediad/internal/shared"
	"mediad/internal/types"
)

type fakeStore struct {
	dists  []types.Distribution
	points []types.EntryPoint
	err    error
}

func (s fakeStore) Distribution(_ context.Context, name string) (types.Distribution, error) {
	for _, dist := range s.dists {
		if shared.NormalizeProjectName(dist.ProjectName) == shared.NormalizeProjectName(name) {
			return dist, nil
		}
	}
	return types.Distribution{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("distribution not found: " + name)
}

func (s fakeStore) EntryPoints(_ context.Context, group string) ([]types.EntryPoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []types.EntryPoint
	for _, point := range s.points {
		if point.Group == group {
			out = append(out, point)
		}
	}
	return out, nil
}

func staticProbe(fact types.DependencyFact) Probe {
	return func(context.Context) (types.DependencyFact, error) {
		return fact, nil
	}
}
