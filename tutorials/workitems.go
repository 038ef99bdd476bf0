package tutorials

import (
	"github.com/notargets/KernelTutorials/runner"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/KernelTutorials/vectors"
	"github.com/notargets/gocca"
	"io"
)

const (
	// GlobalWorkSize is the number of work-items in the work-item tutorial
	GlobalWorkSize = 24
	// LocalWorkSize is the work-group size in the work-item tutorial
	LocalWorkSize = 4
)

// LocalGlobalWorkItems launches 24 work-items in groups of 4 and returns
// what they recorded: bananas[local id] holds a global id and
// apples[global id] holds a local id.
func LocalGlobalWorkItems(device *gocca.OCCADevice, out io.Writer,
	opts Options) (bananas, apples []int32, err error) {
	// Only the first LocalWorkSize slots of bananas are ever written
	bananas = make([]int32, LocalWorkSize)
	apples = make([]int32, GlobalWorkSize)

	err = launch{
		config: builder.Config{
			GlobalSize: []int{GlobalWorkSize},
			LocalSize:  []int{LocalWorkSize},
		},
		source: workItemsKernel,
		bindings: []*builder.ParamBuilder{
			builder.Output("bananas").Bind(bananas),
			builder.Output("apples").Bind(apples),
		},
		params: func(kr *runner.Runner) []*runner.ParamConfig {
			return []*runner.ParamConfig{
				kr.Param("bananas").CopyBack(),
				kr.Param("apples").CopyBack(),
			}
		},
	}.run(device)
	if err != nil {
		return nil, nil, err
	}

	vectors.Print(out, bananas)
	if err = vectors.Print2D(out, apples, LocalWorkSize, GlobalWorkSize/LocalWorkSize); err != nil {
		return nil, nil, err
	}

	for l, g := range bananas {
		if g < 0 || g >= GlobalWorkSize || int(g)%LocalWorkSize != l {
			return bananas, apples, mismatch("bananas[%d] = %d is not a global id with local id %d", l, g, l)
		}
	}
	for g, l := range apples {
		if int(l) != g%LocalWorkSize {
			return bananas, apples, mismatch("apples[%d] = %d, expected %d", g, l, g%LocalWorkSize)
		}
	}
	return bananas, apples, nil
}
