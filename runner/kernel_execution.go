// File: runner/kernel_execution.go
// Execute kernels using configurations

package runner

import (
	"fmt"
	"github.com/notargets/KernelTutorials/runner/builder"
)

// ExecuteKernel runs one configured kernel: host→device copies, launch,
// a blocking wait for the device, then device→host copies.
func (kr *Runner) ExecuteKernel(name string) error {
	config, exists := kr.KernelConfigs[name]
	if !exists {
		return fmt.Errorf("kernel %s not configured - use ConfigureKernel first", name)
	}

	kernel, exists := kr.Kernels[name]
	if !exists {
		return fmt.Errorf("kernel %s not compiled - use BuildKernel first", name)
	}

	preCopyParams := make([]ParameterUsage, 0)
	for _, param := range config.Parameters {
		if param.HasAction(CopyTo) {
			preCopyParams = append(preCopyParams, ParameterUsage{
				Binding: param.Binding,
				Actions: CopyTo,
			})
		}
	}
	if err := kr.executeCopyActions(preCopyParams); err != nil {
		return fmt.Errorf("pre-kernel copy failed: %w", err)
	}

	args, err := kr.buildKernelArguments(config)
	if err != nil {
		return fmt.Errorf("failed to build arguments: %w", err)
	}

	if err := kernel.RunWithArgs(args...); err != nil {
		return fmt.Errorf("kernel execution failed: %w", err)
	}

	kr.Device.Finish()

	postCopyParams := make([]ParameterUsage, 0)
	for _, param := range config.Parameters {
		if param.HasAction(CopyBack) {
			postCopyParams = append(postCopyParams, ParameterUsage{
				Binding: param.Binding,
				Actions: CopyBack,
			})
		}
	}
	if err := kr.executeCopyActions(postCopyParams); err != nil {
		return fmt.Errorf("post-kernel copy failed: %w", err)
	}

	return nil
}

// buildKernelArguments returns the device buffers in configured order
func (kr *Runner) buildKernelArguments(config *KernelConfig) ([]interface{}, error) {
	args := make([]interface{}, 0, len(config.Parameters))
	for _, param := range config.Parameters {
		mem := kr.GetMemory(param.Binding.Name)
		if mem == nil {
			return nil, fmt.Errorf("memory for %s not found", param.Binding.Name)
		}
		args = append(args, mem)
	}
	return args, nil
}

func typeNameOf(b *DeviceBinding) string {
	return builder.TypeName(b.DataType)
}
