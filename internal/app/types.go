package app

import (
	"mediad/internal/core"
	"mediad/internal/types"
)

type ListDepsRequest struct {
	// Probes replaces the default probe set when non-nil.
	Probes []core.Probe
}

type ListDepsResult struct {
	Facts  []types.DependencyFact
	Report string
}
