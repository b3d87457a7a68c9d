package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"mediad/internal/ports"
	"mediad/internal/types"
)

// OptionalModule is an integration library reported by module path.
type OptionalModule struct {
	Name string
	Path string
}

// OptionalModules are the integrations probed after GStreamer, in report
// order.
var OptionalModules = []OptionalModule{
	{Name: "protoactor-go", Path: "github.com/asynkron/protoactor-go"},
	{Name: "librespot-golang", Path: "github.com/librespot-org/librespot-golang"},
	{Name: "lastfm-go", Path: "github.com/shkh/lastfm-go"},
	{Name: "godbus", Path: "github.com/godbus/dbus/v5"},
	{Name: "go-serial", Path: "go.bug.st/serial"},
	{Name: "chi", Path: "github.com/go-chi/chi/v5"},
	{Name: "gorilla-websocket", Path: "github.com/gorilla/websocket"},
}

// ProbeSources are the collaborators the default probe set inspects.
type ProbeSources struct {
	Platform       ports.PlatformPort
	Runtime        ports.RuntimePort
	Modules        ports.ModulePort
	Elements       ports.ElementRegistryPort
	SystemPackages ports.SystemPackagePort
	Distributions  ports.DistributionPort
	Extensions     ports.ExtensionRegistryPort
}

// DefaultProbes builds the standard report: platform, runtime, GStreamer,
// optional integrations, the host application with its requirement tree,
// then one probe per discovered extension. A failing extension discovery
// is returned as is.
func DefaultProbes(ctx context.Context, src ProbeSources) ([]Probe, error) {
	probes := []Probe{
		PlatformProbe(src.Platform),
		RuntimeProbe(src.Runtime),
		GStreamerProbe(src.Elements, src.SystemPackages),
	}
	for _, module := range OptionalModules {
		probes = append(probes, ModuleProbe(src.Modules, module.Name, module.Path))
	}

	resolver := NewDistributionResolver(src.Distributions)
	probes = append(probes, DistributionProbe(resolver, types.HostProject, true, true))

	names, err := src.Extensions.ExtensionNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		probes = append(probes, DistributionProbe(resolver, name, false, false))
	}
	log.Ctx(ctx).Debug().Int("probes", len(probes)).Int("extensions", len(names)).Msg("probe set built")
	return probes, nil
}
