// File: runner/binding.go
// Host↔device bindings and the copy actions applied to them

package runner

import (
	"fmt"
	"github.com/notargets/KernelTutorials/runner/builder"
)

// ActionFlags represents the memory operations to perform for a parameter
type ActionFlags int

const (
	// No action
	NoAction ActionFlags = 0
	// Copy from host to device before kernel execution
	CopyTo ActionFlags = 1 << iota
	// Copy from device to host after kernel execution
	CopyBack
	// Bidirectional copy (CopyTo | CopyBack)
	Copy = CopyTo | CopyBack
)

// DeviceBinding represents a host↔device data binding
type DeviceBinding struct {
	Name string

	// Host data reference: []int32, []int64, []float32, []float64 or nil
	HostBinding interface{}

	DataType    builder.DataType
	Size        int64 // Number of elements
	ElementSize int   // Bytes per element

	IsOutput bool // Whether the kernel may write the buffer

	ParamSpec *builder.ParamSpec
}

// Bytes returns the device buffer size in bytes
func (b *DeviceBinding) Bytes() int64 {
	return b.Size * int64(b.ElementSize)
}

// ParameterUsage represents how a binding is used in a specific kernel or copy operation
type ParameterUsage struct {
	Binding *DeviceBinding
	Actions ActionFlags
}

// HasAction checks if a specific action is set
func (pu *ParameterUsage) HasAction(action ActionFlags) bool {
	return pu.Actions&action != 0
}

// NeedsCopyTo returns true if this usage requires host→device copy
func (pu *ParameterUsage) NeedsCopyTo() bool {
	return pu.HasAction(CopyTo)
}

// NeedsCopyBack returns true if this usage requires device→host copy
func (pu *ParameterUsage) NeedsCopyBack() bool {
	return pu.HasAction(CopyBack)
}

// DefineBindings establishes host↔device data relationships.
// Must be called before AllocateDevice.
func (kr *Runner) DefineBindings(params ...*builder.ParamBuilder) error {
	if kr.IsAllocated {
		return fmt.Errorf("bindings cannot be defined after AllocateDevice has been called")
	}

	for i, p := range params {
		if p == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
		spec := p.Spec
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
		if _, exists := kr.Bindings[spec.Name]; exists {
			return fmt.Errorf("binding %s already defined", spec.Name)
		}
		if spec.HostBinding != nil {
			if err := checkHostType(spec.HostBinding, spec.DataType); err != nil {
				return fmt.Errorf("binding %s: %w", spec.Name, err)
			}
		}

		kr.Bindings[spec.Name] = &DeviceBinding{
			Name:        spec.Name,
			HostBinding: spec.HostBinding,
			DataType:    spec.DataType,
			Size:        spec.Size,
			ElementSize: int(builder.SizeOfType(spec.DataType)),
			IsOutput:    !spec.IsConst(),
			ParamSpec:   &spec,
		}
	}

	return nil
}

// GetBinding retrieves a binding by name
func (kr *Runner) GetBinding(name string) *DeviceBinding {
	return kr.Bindings[name]
}

// checkHostType verifies the host slice element type matches the declared type
func checkHostType(host interface{}, dt builder.DataType) error {
	var ok bool
	switch host.(type) {
	case []int32:
		ok = dt == builder.INT32
	case []int64:
		ok = dt == builder.INT64
	case []float32:
		ok = dt == builder.Float32
	case []float64:
		ok = dt == builder.Float64
	default:
		return fmt.Errorf("unsupported host type %T", host)
	}
	if !ok {
		return fmt.Errorf("host type %T does not match %s", host, builder.TypeName(dt))
	}
	return nil
}
