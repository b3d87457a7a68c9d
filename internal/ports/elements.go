package ports

import (
	"context"

	"mediad/internal/types"
)

// ElementRegistryPort inspects the GStreamer plugin registry.
//
// Every method returns an error wrapping exec.ErrNotFound when the
// inspector binary is not installed; callers treat only that case as
// "not found".
type ElementRegistryPort interface {
	// Version returns the GStreamer library and inspector tool versions.
	Version(ctx context.Context) (types.GStreamerVersion, error)

	// Path returns the resolved location of the inspector binary.
	Path() (string, error)

	// Elements lists every element factory name known to the registry.
	Elements(ctx context.Context) ([]string, error)
}
