package ports

import (
	"context"

	"mediad/internal/types"
)

// DistributionPort reads installed package metadata.
type DistributionPort interface {
	// Distribution returns the installed distribution with the given
	// project name. Names are compared after PEP 503 normalization.
	Distribution(ctx context.Context, name string) (types.Distribution, error)

	// EntryPoints lists every entry point registered under group across
	// all installed distributions.
	EntryPoints(ctx context.Context, group string) ([]types.EntryPoint, error)
}

// ExtensionRegistryPort enumerates installed extensions.
type ExtensionRegistryPort interface {
	// ExtensionNames returns distinct extension project names, excluding
	// the host application.
	ExtensionNames(ctx context.Context) ([]string, error)
}
