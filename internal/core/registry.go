package core

import (
	"context"
	"sort"

	"mediad/internal/ports"
	"mediad/internal/types"
)

// EntryPointRegistry discovers extensions from the entry points installed
// distributions register under a group.
type EntryPointRegistry struct {
	store ports.DistributionPort
	group string
	host  string
}

func NewEntryPointRegistry(store ports.DistributionPort) EntryPointRegistry {
	return EntryPointRegistry{store: store, group: types.ExtensionGroup, host: types.HostProject}
}

func (r EntryPointRegistry) ExtensionNames(ctx context.Context) ([]string, error) {
	entries, err := r.store.EntryPoints(ctx, r.group)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.ProjectName)
	}
	return distinctExtensionNames(names, r.host), nil
}

// StaticRegistry is an extension registry over a fixed list of names.
type StaticRegistry []string

func (r StaticRegistry) ExtensionNames(context.Context) ([]string, error) {
	return distinctExtensionNames(r, types.HostProject), nil
}

// distinctExtensionNames drops duplicates and the host project, then sorts
// so the report is stable between runs.
func distinctExtensionNames(names []string, host string) []string {
	hostKey := requirementKey(host)
	seen := map[string]struct{}{}
	var out []string
	for _, name := range names {
		key := requirementKey(name)
		if name == "" || key == hostKey {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
