package app

import (
	"mediad/internal/adapters"
	"mediad/internal/core"
	"mediad/internal/ports"
)

type Service struct {
	Platform       ports.PlatformPort
	Runtime        ports.RuntimePort
	Modules        ports.ModulePort
	Elements       ports.ElementRegistryPort
	SystemPackages ports.SystemPackagePort
	Distributions  ports.DistributionPort
	Extensions     ports.ExtensionRegistryPort
}

type ServiceConfig struct {
	PackagesDir string
	GstInspect  string
	DpkgStatus  string
}

func NewService(cfg ServiceConfig) Service {
	buildInfo := adapters.NewBuildInfoAdapter()
	store := adapters.NewDistributionStoreAdapter(cfg.PackagesDir)
	return Service{
		Platform:       adapters.NewHostPlatformAdapter(),
		Runtime:        buildInfo,
		Modules:        buildInfo,
		Elements:       adapters.NewGstInspectAdapter(cfg.GstInspect),
		SystemPackages: adapters.NewDpkgStatusAdapter(cfg.DpkgStatus),
		Distributions:  store,
		Extensions:     core.NewEntryPointRegistry(store),
	}
}

func (s Service) probeSources() core.ProbeSources {
	return core.ProbeSources{
		Platform:       s.Platform,
		Runtime:        s.Runtime,
		Modules:        s.Modules,
		Elements:       s.Elements,
		SystemPackages: s.SystemPackages,
		Distributions:  s.Distributions,
		Extensions:     s.Extensions,
	}
}
