package ports

import (
	"context"

	"mediad/internal/types"
)

type PlatformPort interface {
	Describe(ctx context.Context) (types.PlatformInfo, error)
}

type RuntimePort interface {
	Runtime() types.RuntimeInfo
}

// ModulePort looks up Go modules linked into the running binary.
type ModulePort interface {
	// Module returns (info, true) when the module is part of the build,
	// (zero, false) otherwise.
	Module(path string) (types.ModuleInfo, bool)
}

// SystemPackagePort queries the operating system package database.
type SystemPackagePort interface {
	// Lookup returns (pkg, true, nil) for an installed package and
	// (zero, false, nil) when the package is unknown. A database that
	// cannot be read at all is reported as absent, not as an error.
	Lookup(name string) (types.SystemPackage, bool, error)
}
