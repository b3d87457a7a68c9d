package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mediad/internal/ports"
	"mediad/internal/types"
)

// DistributionResolver turns installed distributions into dependency
// facts, optionally expanding their requirement trees.
type DistributionResolver struct {
	store ports.DistributionPort
}

func NewDistributionResolver(store ports.DistributionPort) DistributionResolver {
	return DistributionResolver{store: store}
}

// Fact describes the named distribution. With expand set, its declared
// requirements (plus every extra when includeExtras is set) become
// children, recursively.
func (r DistributionResolver) Fact(ctx context.Context, name string, includeExtras bool, expand bool) (types.DependencyFact, error) {
	cache := newVersionCache()
	return r.resolve(ctx, types.Requirement{Name: name}, includeExtras, expand, cache, map[string]struct{}{})
}

func (r DistributionResolver) resolve(ctx context.Context, req types.Requirement, includeExtras bool, expand bool, cache *versionCache, visiting map[string]struct{}) (types.DependencyFact, error) {
	key := requirementKey(req.Name)
	if _, ok := visiting[key]; ok {
		return types.DependencyFact{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("requirement cycle at %s", req.Name))
	}
	dist, err := r.store.Distribution(ctx, req.Name)
	if err != nil {
		return types.DependencyFact{}, err
	}
	if err := cache.checkRequirement(req, dist.Version); err != nil {
		return types.DependencyFact{}, err
	}
	fact := types.DependencyFact{
		Name:    dist.ProjectName,
		Version: dist.Version,
		Path:    dist.Location,
	}
	if !expand {
		return fact, nil
	}

	visiting[key] = struct{}{}
	defer delete(visiting, key)
	for _, raw := range requirements(dist, includeExtras) {
		child, err := ParseRequirement(raw)
		if err != nil {
			return types.DependencyFact{}, err
		}
		sub, err := r.resolve(ctx, child, false, true, cache, visiting)
		if err != nil {
			return types.DependencyFact{}, err
		}
		fact.Children = append(fact.Children, sub)
	}
	log.Ctx(ctx).Debug().Str("distribution", fact.Name).Int("requires", len(fact.Children)).Msg("requirements expanded")
	return fact, nil
}

// requirements lists base requirements followed by those of each extra
// in extra-name order.
func requirements(dist types.Distribution, includeExtras bool) []string {
	out := append([]string(nil), dist.Requires...)
	if !includeExtras {
		return out
	}
	extras := make([]string, 0, len(dist.Extras))
	for extra := range dist.Extras {
		extras = append(extras, extra)
	}
	sort.Strings(extras)
	for _, extra := range extras {
		out = append(out, dist.Extras[extra]...)
	}
	return out
}
