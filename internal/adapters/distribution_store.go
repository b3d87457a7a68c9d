package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"mediad/internal/ports"
	"mediad/internal/shared"
	"mediad/internal/types"
)

const (
	DefaultPackagesDir   = "/usr/share/mediad/packages"
	distributionManifest = "package.yaml"
)

// DistributionStoreAdapter reads installed distributions from a directory
// holding one <name>/package.yaml manifest per distribution.
type DistributionStoreAdapter struct {
	Root   string
	cached []types.Distribution
	points map[string][]types.EntryPoint
	loaded bool
}

func NewDistributionStoreAdapter(root string) *DistributionStoreAdapter {
	if strings.TrimSpace(root) == "" {
		root = DefaultPackagesDir
	}
	return &DistributionStoreAdapter{Root: root}
}

func (a *DistributionStoreAdapter) Distribution(ctx context.Context, name string) (types.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return types.Distribution{}, err
	}
	dists, err := a.load()
	if err != nil {
		return types.Distribution{}, err
	}
	key := shared.NormalizeProjectName(name)
	for _, dist := range dists {
		if shared.NormalizeProjectName(dist.ProjectName) == key {
			return dist, nil
		}
	}
	return types.Distribution{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("distribution not found: %s", name))
}

func (a *DistributionStoreAdapter) EntryPoints(ctx context.Context, group string) ([]types.EntryPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := a.load(); err != nil {
		return nil, err
	}
	return append([]types.EntryPoint(nil), a.points[group]...), nil
}

func (a *DistributionStoreAdapter) load() ([]types.Distribution, error) {
	if a.loaded {
		return a.cached, nil
	}
	entries, err := os.ReadDir(a.Root)
	if err != nil {
		code := errbuilder.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = errbuilder.CodeNotFound
		}
		return nil, errbuilder.New().
			WithCode(code).
			WithMsg("failed to read packages directory").
			WithCause(err)
	}
	seen := map[string]string{}
	points := map[string][]types.EntryPoint{}
	var dists []types.Distribution
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		location := filepath.Join(a.Root, entry.Name())
		manifest, ok, err := readDistributionManifest(filepath.Join(location, distributionManifest))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		key := shared.NormalizeProjectName(manifest.Name)
		if previous, dup := seen[key]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("distribution %s installed twice: %s and %s", manifest.Name, previous, location))
		}
		seen[key] = location
		dists = append(dists, types.Distribution{
			ProjectName: manifest.Name,
			Version:     manifest.Version,
			Location:    location,
			Requires:    manifest.Requires,
			Extras:      manifest.Extras,
		})
		for group, values := range manifest.EntryPoints {
			for _, value := range values {
				points[group] = append(points[group], types.EntryPoint{
					Group:       group,
					Name:        entryPointName(value),
					ProjectName: manifest.Name,
				})
			}
		}
	}
	a.cached = dists
	a.points = points
	a.loaded = true
	return dists, nil
}

// readDistributionManifest returns ok=false for directories without a
// manifest; a manifest that cannot be parsed is an error.
func readDistributionManifest(path string) (types.DistributionManifest, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.DistributionManifest{}, false, nil
	}
	if err != nil {
		return types.DistributionManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read distribution manifest").
			WithCause(err)
	}
	var manifest types.DistributionManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.DistributionManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse %s", path)).
			WithCause(err)
	}
	if strings.TrimSpace(manifest.Name) == "" || strings.TrimSpace(manifest.Version) == "" {
		return types.DistributionManifest{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s must set name and version", path))
	}
	return manifest, true, nil
}

// entryPointName takes the name of "name = module:attr".
func entryPointName(value string) string {
	name, _, _ := strings.Cut(value, "=")
	return strings.TrimSpace(name)
}

var _ ports.DistributionPort = (*DistributionStoreAdapter)(nil)
