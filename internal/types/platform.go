package types

type PlatformInfo struct {
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
}

type RuntimeInfo struct {
	Compiler string
	Version  string
	Root     string
}

// GStreamerVersion holds both versions printed by one inspector
// --version run.
type GStreamerVersion struct {
	Library   string
	Inspector string
}

type ModuleInfo struct {
	Path    string
	Version string
	Dir     string
}

type SystemPackage struct {
	Name     string
	Version  string
	Upstream string
	Status   string
}
