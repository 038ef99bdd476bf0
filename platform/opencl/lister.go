// Package opencl lists platforms and devices through the OpenCL ICD loader.
package opencl

import (
	"fmt"
	"github.com/jgillich/go-opencl/cl"
	"github.com/notargets/KernelTutorials/platform"
)

// Lister implements platform.Lister over the installed OpenCL drivers
type Lister struct {
	platforms []*cl.Platform
}

// NewLister creates an OpenCL backed platform.Lister
func NewLister() *Lister {
	return &Lister{}
}

// Platforms returns every OpenCL platform installed on the host
func (l *Lister) Platforms() ([]platform.PlatformInfo, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		return nil, err
	}
	l.platforms = platforms

	infos := make([]platform.PlatformInfo, len(platforms))
	for i, p := range platforms {
		infos[i] = platform.PlatformInfo{
			Index:   i,
			Name:    p.Name(),
			Vendor:  p.Vendor(),
			Version: p.Version(),
		}
	}
	return infos, nil
}

// Devices returns all devices of every type on the indexed platform
func (l *Lister) Devices(index int) ([]platform.DeviceInfo, error) {
	if l.platforms == nil {
		if _, err := l.Platforms(); err != nil {
			return nil, err
		}
	}
	if index < 0 || index >= len(l.platforms) {
		return nil, fmt.Errorf("platform index %d out of range [0,%d)", index, len(l.platforms))
	}

	devices, err := l.platforms[index].GetDevices(cl.DeviceTypeAll)
	if err != nil {
		return nil, err
	}

	infos := make([]platform.DeviceInfo, len(devices))
	for i, d := range devices {
		infos[i] = platform.DeviceInfo{
			Index:            i,
			Name:             d.Name(),
			Type:             d.Type().String(),
			Vendor:           d.Vendor(),
			MaxWorkGroupSize: d.MaxWorkGroupSize(),
		}
	}
	return infos, nil
}
