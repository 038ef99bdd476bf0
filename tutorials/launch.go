package tutorials

import (
	"fmt"
	"github.com/notargets/KernelTutorials/runner"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/gocca"
)

// kernelName is the entry point every tutorial kernel defines
const kernelName = "add"

// launch is one pass of the dispatch sequence: allocate and upload the
// bound buffers, build the kernel, enqueue it once and block until the
// configured buffers are copied back into their host slices.
type launch struct {
	config   builder.Config
	source   string
	bindings []*builder.ParamBuilder
	// params lists the kernel arguments in signature order
	params func(kr *runner.Runner) []*runner.ParamConfig
}

func (l launch) run(device *gocca.OCCADevice) error {
	kr, err := runner.NewRunner(device, l.config)
	if err != nil {
		return err
	}
	defer kr.Free()

	if err = kr.DefineBindings(l.bindings...); err != nil {
		return fmt.Errorf("failed to define bindings: %w", err)
	}
	if err = kr.AllocateDevice(); err != nil {
		return fmt.Errorf("failed to allocate device: %w", err)
	}

	kc, err := kr.ConfigureKernel(kernelName, l.params(kr)...)
	if err != nil {
		return fmt.Errorf("failed to configure kernel: %w", err)
	}
	if _, err = kr.BuildKernel(fmt.Sprintf(l.source, kc.GetSignature()), kernelName); err != nil {
		return err
	}
	return kr.ExecuteKernel(kernelName)
}
