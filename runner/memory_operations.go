package runner

import (
	"fmt"
	"github.com/notargets/gocca"
	"sort"
	"unsafe"
)

// AllocateDevice allocates one device buffer per binding. Buffers bound to
// host data are initialised from it, the way a buffer is built from a host
// slice; unbound buffers start zeroed.
func (kr *Runner) AllocateDevice() error {
	if kr.IsAllocated {
		return fmt.Errorf("device memory already allocated")
	}
	if len(kr.Bindings) == 0 {
		return fmt.Errorf("no bindings defined - call DefineBindings first")
	}

	names := make([]string, 0, len(kr.Bindings))
	for name := range kr.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		binding := kr.Bindings[name]
		mem, err := kr.allocateBuffer(binding)
		if err != nil {
			return fmt.Errorf("failed to allocate %s: %w", name, err)
		}
		kr.PooledMemory[name] = mem
		kr.AllocatedArrays = append(kr.AllocatedArrays, name)
	}

	kr.IsAllocated = true
	return nil
}

func (kr *Runner) allocateBuffer(binding *DeviceBinding) (*gocca.OCCAMemory, error) {
	var mem *gocca.OCCAMemory
	if binding.HostBinding == nil {
		zeros := make([]byte, binding.Bytes())
		mem = kr.Device.Malloc(binding.Bytes(), unsafe.Pointer(&zeros[0]), nil)
	} else {
		ptr, bytes, err := hostPointer(binding)
		if err != nil {
			return nil, err
		}
		mem = kr.Device.Malloc(bytes, ptr, nil)
	}
	if mem == nil {
		return nil, fmt.Errorf("device returned no memory for %d bytes", binding.Bytes())
	}
	return mem, nil
}

// hostPointer returns the address and byte length of a binding's host slice
func hostPointer(binding *DeviceBinding) (unsafe.Pointer, int64, error) {
	var ptr unsafe.Pointer
	var n int
	switch data := binding.HostBinding.(type) {
	case []int32:
		n = len(data)
		if n > 0 {
			ptr = unsafe.Pointer(&data[0])
		}
	case []int64:
		n = len(data)
		if n > 0 {
			ptr = unsafe.Pointer(&data[0])
		}
	case []float32:
		n = len(data)
		if n > 0 {
			ptr = unsafe.Pointer(&data[0])
		}
	case []float64:
		n = len(data)
		if n > 0 {
			ptr = unsafe.Pointer(&data[0])
		}
	default:
		return nil, 0, fmt.Errorf("unsupported host type %T", binding.HostBinding)
	}

	if int64(n) != binding.Size {
		return nil, 0, fmt.Errorf("host slice for %s has %d elements, device buffer has %d",
			binding.Name, n, binding.Size)
	}
	if ptr == nil {
		return nil, 0, fmt.Errorf("host slice for %s is empty", binding.Name)
	}
	return ptr, binding.Bytes(), nil
}

// executeCopyActions is the single path for all host↔device transfers
func (kr *Runner) executeCopyActions(actions []ParameterUsage) error {
	for _, param := range actions {
		if param.Actions == NoAction {
			continue
		}

		if param.HasAction(CopyTo) {
			if err := kr.copyToDevice(param.Binding); err != nil {
				return fmt.Errorf("failed to copy %s to device: %w", param.Binding.Name, err)
			}
		}

		if param.HasAction(CopyBack) {
			if err := kr.copyFromDevice(param.Binding); err != nil {
				return fmt.Errorf("failed to copy %s from device: %w", param.Binding.Name, err)
			}
		}
	}
	return nil
}

func (kr *Runner) copyToDevice(binding *DeviceBinding) error {
	if binding.HostBinding == nil {
		return nil
	}
	mem := kr.GetMemory(binding.Name)
	if mem == nil {
		return fmt.Errorf("no device memory allocated for %s", binding.Name)
	}
	ptr, bytes, err := hostPointer(binding)
	if err != nil {
		return err
	}
	mem.CopyFrom(ptr, bytes)
	return nil
}

func (kr *Runner) copyFromDevice(binding *DeviceBinding) error {
	if binding.HostBinding == nil {
		return fmt.Errorf("%s has no host binding to copy into", binding.Name)
	}
	mem := kr.GetMemory(binding.Name)
	if mem == nil {
		return fmt.Errorf("no device memory allocated for %s", binding.Name)
	}
	ptr, bytes, err := hostPointer(binding)
	if err != nil {
		return err
	}
	mem.CopyTo(ptr, bytes)
	return nil
}

// Upload copies a binding's host slice to its device buffer
func (kr *Runner) Upload(name string) error {
	return kr.copyNamed(name, CopyTo)
}

// ReadBack copies a binding's device buffer into its host slice. The copy
// is blocking: the host slice holds the device contents on return.
func (kr *Runner) ReadBack(name string) error {
	return kr.copyNamed(name, CopyBack)
}

func (kr *Runner) copyNamed(name string, action ActionFlags) error {
	if !kr.IsAllocated {
		return fmt.Errorf("device memory not allocated - call AllocateDevice first")
	}
	binding := kr.GetBinding(name)
	if binding == nil {
		return fmt.Errorf("binding %s not found", name)
	}
	return kr.executeCopyActions([]ParameterUsage{{Binding: binding, Actions: action}})
}
