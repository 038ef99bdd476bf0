// File: runner/kernel_config.go
// Kernel and copy configurations built from named bindings

package runner

import (
	"fmt"
	"strings"
)

// KernelConfig represents the configuration for a specific kernel execution.
// Parameters are passed to the kernel in the order they are listed.
type KernelConfig struct {
	Name       string
	Parameters []ParameterUsage
}

// CopyConfig represents a standalone memory copy operation configuration
type CopyConfig struct {
	Parameters []ParameterUsage
}

// GetParameter finds a parameter usage by name
func (kc *KernelConfig) GetParameter(name string) *ParameterUsage {
	for i := range kc.Parameters {
		if kc.Parameters[i].Binding.Name == name {
			return &kc.Parameters[i]
		}
	}
	return nil
}

// HasParameter checks if a parameter is configured
func (kc *KernelConfig) HasParameter(name string) bool {
	return kc.GetParameter(name) != nil
}

// ConfigureKernel creates a kernel-specific parameter configuration
func (kr *Runner) ConfigureKernel(name string, params ...*ParamConfig) (*KernelConfig, error) {
	if !kr.IsAllocated {
		return nil, fmt.Errorf("device memory not allocated - call AllocateDevice first")
	}

	usages, err := collectUsages(params)
	if err != nil {
		return nil, fmt.Errorf("kernel %s: %w", name, err)
	}

	config := &KernelConfig{
		Name:       name,
		Parameters: usages,
	}
	kr.KernelConfigs[name] = config

	return config, nil
}

// ConfigureCopy creates a configuration for standalone memory operations
func (kr *Runner) ConfigureCopy(params ...*ParamConfig) (*CopyConfig, error) {
	if !kr.IsAllocated {
		return nil, fmt.Errorf("device memory not allocated - call AllocateDevice first")
	}

	usages, err := collectUsages(params)
	if err != nil {
		return nil, err
	}
	return &CopyConfig{Parameters: usages}, nil
}

// ExecuteCopy executes a copy configuration
func (kr *Runner) ExecuteCopy(config *CopyConfig) error {
	if config == nil {
		return fmt.Errorf("copy configuration is nil")
	}
	return kr.executeCopyActions(config.Parameters)
}

func collectUsages(params []*ParamConfig) ([]ParameterUsage, error) {
	usages := make([]ParameterUsage, 0, len(params))
	seen := make(map[string]bool)
	for _, param := range params {
		if param == nil {
			continue
		}
		if param.binding == nil {
			return nil, fmt.Errorf("parameter %s has no binding", param.name)
		}
		if seen[param.name] {
			return nil, fmt.Errorf("parameter %s listed twice", param.name)
		}
		seen[param.name] = true

		usages = append(usages, ParameterUsage{
			Binding: param.binding,
			Actions: param.actions,
		})
	}
	return usages, nil
}

// Param creates a parameter configuration for a named binding
func (kr *Runner) Param(name string) *ParamConfig {
	// An unknown name yields a config that fails at ConfigureKernel
	return &ParamConfig{
		name:    name,
		binding: kr.GetBinding(name),
		actions: NoAction,
	}
}

// ParamConfig is a lightweight builder for configuring parameter actions
type ParamConfig struct {
	name    string
	binding *DeviceBinding
	actions ActionFlags
}

// CopyTo sets the parameter to copy from host to device
func (pc *ParamConfig) CopyTo() *ParamConfig {
	pc.actions |= CopyTo
	return pc
}

// CopyBack sets the parameter to copy from device to host
func (pc *ParamConfig) CopyBack() *ParamConfig {
	pc.actions |= CopyBack
	return pc
}

// Copy sets the parameter for bidirectional copy
func (pc *ParamConfig) Copy() *ParamConfig {
	pc.actions |= Copy
	return pc
}

// NoCopy explicitly disables all copy operations for this parameter
func (pc *ParamConfig) NoCopy() *ParamConfig {
	pc.actions = NoAction
	return pc
}

// GetSignature generates the OKL parameter list matching the configured
// argument order, e.g. "const int *in,\n\tint *out"
func (kc *KernelConfig) GetSignature() string {
	params := make([]string, 0, len(kc.Parameters))
	for _, p := range kc.Parameters {
		b := p.Binding
		constStr := ""
		if !b.IsOutput {
			constStr = "const "
		}
		params = append(params, fmt.Sprintf("%s%s *%s", constStr, typeNameOf(b), b.Name))
	}
	return strings.Join(params, ",\n\t")
}
