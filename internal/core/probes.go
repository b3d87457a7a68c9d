package core

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"

	"mediad/internal/ports"
	"mediad/internal/types"
)

// gstreamerElements are the registry entries the media server relies on,
// grouped by the feature that needs them.
var gstreamerElements = []string{
	// Core playback
	"uridecodebin",
	"playbin",

	// External HTTP streams
	"souphttpsrc",

	// Spotify
	"appsrc",

	// Mixers and sinks
	"alsasink",
	"osssink",
	"oss4sink",
	"pulsesink",
	"autoaudiosink",
	"volume",

	// MP3 encoding and decoding
	"mpegaudioparse",
	"mpg123audiodec",
	"id3demux",
	"id3v2mux",
	"lamemp3enc",

	// Ogg Vorbis encoding and decoding
	"vorbisdec",
	"vorbisenc",
	"vorbisparse",
	"oggdemux",
	"oggmux",
	"oggparse",

	// Flac decoding
	"flacdec",
	"flacparse",

	// Shoutcast output
	"shout2send",
}

// gstreamerSystemPackage is the distribution package shipping the
// inspector tool.
const gstreamerSystemPackage = "gstreamer1.0-tools"

func PlatformProbe(platform ports.PlatformPort) Probe {
	return func(ctx context.Context) (types.DependencyFact, error) {
		info, err := platform.Describe(ctx)
		if err != nil {
			return types.DependencyFact{}, err
		}
		return types.DependencyFact{Name: "Platform", Version: platformString(info)}, nil
	}
}

// platformString joins the known platform parts, e.g.
// "Linux-6.1.0-18-amd64-x86_64-with-debian-12.5".
func platformString(info types.PlatformInfo) string {
	var parts []string
	for _, part := range []string{capitalize(info.OS), info.KernelVersion, info.KernelArch} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if info.Platform != "" {
		distro := "with-" + info.Platform
		if info.PlatformVersion != "" {
			distro += "-" + info.PlatformVersion
		}
		parts = append(parts, distro)
	}
	return strings.Join(parts, "-")
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func RuntimeProbe(runtime ports.RuntimePort) Probe {
	return func(context.Context) (types.DependencyFact, error) {
		info := runtime.Runtime()
		fact := types.DependencyFact{
			Name:    "Go",
			Version: strings.TrimSpace(fmt.Sprintf("%s %s", info.Compiler, info.Version)),
		}
		if info.Root != "" {
			fact.Path = filepath.Join(info.Root, "src", "runtime")
		}
		return fact, nil
	}
}

// GStreamerProbe reports the GStreamer version and which relevant
// elements the plugin registry knows. Only a missing inspector binary
// counts as "not found"; any other failure is returned.
func GStreamerProbe(registry ports.ElementRegistryPort, packages ports.SystemPackagePort) Probe {
	return func(ctx context.Context) (types.DependencyFact, error) {
		const name = "GStreamer"
		version, err := registry.Version(ctx)
		if errors.Is(err, exec.ErrNotFound) {
			return types.NotFound(name), nil
		}
		if err != nil {
			return types.DependencyFact{}, err
		}
		path, err := registry.Path()
		if err != nil {
			return types.DependencyFact{}, err
		}
		known, err := registry.Elements(ctx)
		if err != nil {
			return types.DependencyFact{}, err
		}

		var detail []string
		detail = append(detail, fmt.Sprintf("Inspector: %s %s", filepath.Base(path), version.Inspector))
		if packages != nil {
			pkg, ok, err := packages.Lookup(gstreamerSystemPackage)
			if err != nil {
				return types.DependencyFact{}, err
			}
			if ok {
				detail = append(detail, fmt.Sprintf("System package: %s %s", pkg.Name, pkg.Upstream))
			}
		}
		detail = append(detail, "Relevant elements:")
		for _, check := range checkElements(gstreamerElements, known) {
			status := "not found"
			if check.found {
				status = "OK"
			}
			detail = append(detail, fmt.Sprintf("  %s: %s", check.name, status))
		}
		return types.DependencyFact{
			Name:    name,
			Version: version.Library,
			Path:    path,
			Detail:  strings.Join(detail, "\n"),
		}, nil
	}
}

type elementCheck struct {
	name  string
	found bool
}

func checkElements(wanted []string, known []string) []elementCheck {
	index := make(map[string]struct{}, len(known))
	for _, name := range known {
		index[name] = struct{}{}
	}
	checks := make([]elementCheck, 0, len(wanted))
	for _, name := range wanted {
		_, ok := index[name]
		checks = append(checks, elementCheck{name: name, found: ok})
	}
	return checks
}

// ModuleProbe reports a Go module linked into the running binary under a
// display name.
func ModuleProbe(modules ports.ModulePort, name string, modulePath string) Probe {
	return func(context.Context) (types.DependencyFact, error) {
		info, ok := modules.Module(modulePath)
		if !ok {
			return types.NotFound(name), nil
		}
		fact := types.DependencyFact{Name: name, Version: info.Version}
		if info.Dir != "" {
			fact.Path = filepath.Join(info.Dir, "go.mod")
		}
		return fact, nil
	}
}

// DistributionProbe reports an installed distribution. A missing
// distribution is an error, not "not found".
func DistributionProbe(resolver DistributionResolver, name string, includeExtras bool, expand bool) Probe {
	return func(ctx context.Context) (types.DependencyFact, error) {
		return resolver.Fact(ctx, name, includeExtras, expand)
	}
}
