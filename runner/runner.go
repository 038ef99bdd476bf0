package runner

import (
	"fmt"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/gocca"
)

// Runner owns one compiled kernel program and the device buffers its kernels use
type Runner struct {
	*builder.Builder
	Device        *gocca.OCCADevice
	Kernels       map[string]*gocca.OCCAKernel
	PooledMemory  map[string]*gocca.OCCAMemory
	Bindings      map[string]*DeviceBinding
	KernelConfigs map[string]*KernelConfig
	IsAllocated   bool
}

// NewRunner creates a Runner for the given device and launch geometry
func NewRunner(device *gocca.OCCADevice, cfg builder.Config) (*Runner, error) {
	if device == nil {
		return nil, fmt.Errorf("device cannot be nil")
	}

	bld, err := builder.NewBuilder(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid launch configuration: %w", err)
	}

	kr := &Runner{
		Builder:       bld,
		Device:        device,
		Kernels:       make(map[string]*gocca.OCCAKernel),
		PooledMemory:  make(map[string]*gocca.OCCAMemory),
		Bindings:      make(map[string]*DeviceBinding),
		KernelConfigs: make(map[string]*KernelConfig),
	}
	return kr, nil
}

// BuildKernel compiles a kernel from source and registers it under kernelName.
// The geometry preamble is prepended to the source.
func (kr *Runner) BuildKernel(kernelSource, kernelName string) (*gocca.OCCAKernel, error) {
	kr.GeneratePreamble()

	fullSource := kr.KernelPreamble + "\n" + kernelSource

	var kernel *gocca.OCCAKernel
	var err error

	if kr.Device.Mode() == "OpenMP" {
		// OCCA does not pass -O3 to OpenMP builds by default
		props := gocca.JsonParse(`{"compiler_flags": "-O3"}`)
		defer props.Free()
		kernel, err = kr.Device.BuildKernelFromString(fullSource, kernelName, props)
	} else {
		kernel, err = kr.Device.BuildKernelFromString(fullSource, kernelName, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to build kernel %s: %w", kernelName, err)
	}
	if kernel == nil {
		return nil, fmt.Errorf("kernel build returned nil for %s", kernelName)
	}

	if old, exists := kr.Kernels[kernelName]; exists {
		old.Free()
	}
	kr.Kernels[kernelName] = kernel
	return kernel, nil
}

// GetMemory returns the device buffer for a named binding
func (kr *Runner) GetMemory(name string) *gocca.OCCAMemory {
	if mem, exists := kr.PooledMemory[name]; exists {
		return mem
	}
	return nil
}

// Free releases all kernels and device buffers
func (kr *Runner) Free() {
	for name, kernel := range kr.Kernels {
		kernel.Free()
		delete(kr.Kernels, name)
	}
	for name, mem := range kr.PooledMemory {
		mem.Free()
		delete(kr.PooledMemory, name)
	}
	kr.IsAllocated = false
}
