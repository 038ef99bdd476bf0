package builder

import (
	"fmt"
	"sort"
	"strings"
)

// DataType represents the element type of a host or device array
type DataType int

const (
	Float32 DataType = iota + 1
	Float64
	INT32
	INT64
)

// MaxWorkGroupItems bounds the number of work-items in one work-group.
// Most OpenCL and CUDA devices cap a group at 1024 items.
const MaxWorkGroupItems = 1024

// Config holds the launch geometry and compile-time constants of one kernel program
type Config struct {
	// GlobalSize is the number of work-items per dimension (1 to 3 dimensions)
	GlobalSize []int
	// LocalSize is the work-group size per dimension. Empty means one
	// work-group spanning the whole global size.
	LocalSize []int
	// Defines are emitted as #define NAME VALUE in the kernel preamble
	Defines map[string]int
}

// Builder manages launch geometry and preamble generation for a kernel program
type Builder struct {
	WorkDim    int
	GlobalSize []int
	LocalSize  []int
	NumGroups  []int
	Defines    map[string]int

	// Array tracking, in allocation order
	AllocatedArrays []string

	// Generated code
	KernelPreamble string
}

// NewBuilder validates the launch geometry and creates a Builder
func NewBuilder(cfg Config) (*Builder, error) {
	dims := len(cfg.GlobalSize)
	if dims == 0 {
		return nil, fmt.Errorf("global size cannot be empty")
	}
	if dims > 3 {
		return nil, fmt.Errorf("at most 3 work dimensions are supported, got %d", dims)
	}

	local := cfg.LocalSize
	if len(local) == 0 {
		local = cfg.GlobalSize
	}
	if len(local) != dims {
		return nil, fmt.Errorf("local size has %d dimensions, global size has %d",
			len(local), dims)
	}

	kb := &Builder{
		WorkDim:         dims,
		GlobalSize:      make([]int, dims),
		LocalSize:       make([]int, dims),
		NumGroups:       make([]int, dims),
		Defines:         make(map[string]int),
		AllocatedArrays: []string{},
	}

	groupItems := 1
	for d := 0; d < dims; d++ {
		g, l := cfg.GlobalSize[d], local[d]
		if g <= 0 || l <= 0 {
			return nil, fmt.Errorf("dimension %d: sizes must be positive (global=%d, local=%d)",
				d, g, l)
		}
		if g%l != 0 {
			return nil, fmt.Errorf("dimension %d: global size %d is not a multiple of local size %d",
				d, g, l)
		}
		kb.GlobalSize[d] = g
		kb.LocalSize[d] = l
		kb.NumGroups[d] = g / l
		if l > MaxWorkGroupItems/groupItems {
			return nil, fmt.Errorf("work-group of %v items exceeds %d", local[:d+1], MaxWorkGroupItems)
		}
		groupItems *= l
	}

	for name, value := range cfg.Defines {
		if name == "" {
			return nil, fmt.Errorf("define name cannot be empty")
		}
		kb.Defines[name] = value
	}
	return kb, nil
}

// TotalWorkItems returns the product of the global sizes
func (kb *Builder) TotalWorkItems() int {
	total := 1
	for _, g := range kb.GlobalSize {
		total *= g
	}
	return total
}

// GeneratePreamble emits the geometry and user constants shared by every
// kernel of the program. The result is also stored in KernelPreamble.
func (kb *Builder) GeneratePreamble() string {
	var sb strings.Builder

	sb.WriteString("// Launch geometry\n")
	sb.WriteString(fmt.Sprintf("#define WORK_DIM %d\n", kb.WorkDim))
	for d := 0; d < kb.WorkDim; d++ {
		sb.WriteString(fmt.Sprintf("#define GLOBAL_SIZE_%d %d\n", d, kb.GlobalSize[d]))
		sb.WriteString(fmt.Sprintf("#define LOCAL_SIZE_%d %d\n", d, kb.LocalSize[d]))
		sb.WriteString(fmt.Sprintf("#define NUM_GROUPS_%d %d\n", d, kb.NumGroups[d]))
	}

	if len(kb.Defines) > 0 {
		names := make([]string, 0, len(kb.Defines))
		for name := range kb.Defines {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("\n// Program constants\n")
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("#define %s %d\n", name, kb.Defines[name]))
		}
	}

	kb.KernelPreamble = sb.String()
	return kb.KernelPreamble
}

// GetAllocatedArrays returns the array names in allocation order
func (kb *Builder) GetAllocatedArrays() []string {
	return kb.AllocatedArrays
}
