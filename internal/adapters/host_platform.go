package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/shirou/gopsutil/v4/host"

	"mediad/internal/ports"
	"mediad/internal/types"
)

type HostPlatformAdapter struct{}

func NewHostPlatformAdapter() HostPlatformAdapter {
	return HostPlatformAdapter{}
}

func (a HostPlatformAdapter) Describe(ctx context.Context) (types.PlatformInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return types.PlatformInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read host information").
			WithCause(err)
	}
	return types.PlatformInfo{
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
	}, nil
}

var _ ports.PlatformPort = HostPlatformAdapter{}
