package core

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediad/internal/types"
)

func testSources(extensions StaticRegistry) ProbeSources {
	store := fakeStore{dists: []types.Distribution{
		{ProjectName: "mediad", Version: "3.4.0", Location: "/pkgs/mediad", Requires: []string{"pykka>=2"}},
		{ProjectName: "pykka", Version: "4.0.1", Location: "/pkgs/pykka"},
		{ProjectName: "Mediad-Spotify", Version: "5.0.0", Location: "/pkgs/mediad-spotify", Requires: []string{"pykka"}},
	}}
	return ProbeSources{
		Platform: fakePlatform{info: types.PlatformInfo{OS: "linux", KernelVersion: "6.1", KernelArch: "x86_64"}},
		Runtime:  fakeRuntime{Compiler: "gc", Version: "go1.25.1"},
		Modules: fakeModules{
			"github.com/gorilla/websocket": {Path: "github.com/gorilla/websocket", Version: "v1.5.3"},
		},
		Elements:       fakeElements{err: fmt.Errorf("gst-inspect-1.0: %w", exec.ErrNotFound)},
		SystemPackages: fakePackages{},
		Distributions:  store,
		Extensions:     extensions,
	}
}

func TestDefaultProbesReport(t *testing.T) {
	probes, err := DefaultProbes(t.Context(), testSources(StaticRegistry{"Mediad-Spotify", "mediad"}))
	require.NoError(t, err)
	require.Len(t, probes, 3+len(OptionalModules)+2)

	report, err := FormatDependencyList(t.Context(), probes)
	require.NoError(t, err)
	expect := strings.Join([]string{
		"Platform: Linux-6.1-x86_64 from none",
		"Go: gc go1.25.1 from none",
		"GStreamer: not found",
		"protoactor-go: not found",
		"librespot-golang: not found",
		"lastfm-go: not found",
		"godbus: not found",
		"go-serial: not found",
		"chi: not found",
		"gorilla-websocket: v1.5.3 from none",
		"mediad: 3.4.0 from /pkgs",
		"  - pykka: 4.0.1 from /pkgs",
		"Mediad-Spotify: 5.0.0 from /pkgs",
	}, "\n")
	assert.Equal(t, expect, report)
}

func TestDefaultProbesDiscoveryFailure(t *testing.T) {
	src := testSources(nil)
	src.Extensions = NewEntryPointRegistry(fakeStore{err: errors.New("corrupt metadata")})
	_, err := DefaultProbes(t.Context(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt metadata")
}
