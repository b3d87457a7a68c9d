package adapters

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"golang.org/x/mod/module"

	"mediad/internal/ports"
	"mediad/internal/types"
)

// BuildInfoAdapter answers runtime and module questions from the build
// information embedded in the running binary.
type BuildInfoAdapter struct {
	info     *debug.BuildInfo
	modCache string
	goroot   string
}

func NewBuildInfoAdapter() BuildInfoAdapter {
	info, _ := debug.ReadBuildInfo()
	return NewBuildInfoAdapterFrom(info, moduleCacheDir(), goRoot())
}

func NewBuildInfoAdapterFrom(info *debug.BuildInfo, modCache string, goroot string) BuildInfoAdapter {
	return BuildInfoAdapter{info: info, modCache: modCache, goroot: goroot}
}

func (a BuildInfoAdapter) Runtime() types.RuntimeInfo {
	version := runtime.Version()
	if a.info != nil && a.info.GoVersion != "" {
		version = a.info.GoVersion
	}
	return types.RuntimeInfo{
		Compiler: runtime.Compiler,
		Version:  version,
		Root:     a.goroot,
	}
}

func (a BuildInfoAdapter) Module(path string) (types.ModuleInfo, bool) {
	if a.info == nil {
		return types.ModuleInfo{}, false
	}
	if a.info.Main.Path == path {
		return a.moduleInfo(&a.info.Main), true
	}
	for _, dep := range a.info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			info := a.moduleInfo(dep.Replace)
			info.Path = dep.Path
			if info.Version == "" {
				info.Version = dep.Version
			}
			return info, true
		}
		return a.moduleInfo(dep), true
	}
	return types.ModuleInfo{}, false
}

func (a BuildInfoAdapter) moduleInfo(mod *debug.Module) types.ModuleInfo {
	info := types.ModuleInfo{Path: mod.Path, Version: mod.Version}
	switch {
	case mod.Version == "" || mod.Version == "(devel)":
		// Local replacements and the main module live outside the cache.
		if filepath.IsAbs(mod.Path) {
			info.Dir = mod.Path
		}
	case a.modCache != "":
		escapedPath, err := module.EscapePath(mod.Path)
		if err != nil {
			return info
		}
		escapedVersion, err := module.EscapeVersion(mod.Version)
		if err != nil {
			return info
		}
		info.Dir = filepath.Join(a.modCache, escapedPath+"@"+escapedVersion)
	}
	return info
}

func moduleCacheDir() string {
	if dir := os.Getenv("GOMODCACHE"); dir != "" {
		return dir
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		return filepath.Join(filepath.SplitList(gopath)[0], "pkg", "mod")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "go", "pkg", "mod")
}

func goRoot() string {
	if root := os.Getenv("GOROOT"); root != "" {
		return root
	}
	return runtime.GOROOT()
}

var (
	_ ports.RuntimePort = BuildInfoAdapter{}
	_ ports.ModulePort  = BuildInfoAdapter{}
)
