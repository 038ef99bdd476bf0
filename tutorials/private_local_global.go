package tutorials

import (
	"fmt"
	"github.com/notargets/KernelTutorials/runner"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/KernelTutorials/vectors"
	"github.com/notargets/gocca"
	"gonum.org/v1/gonum/floats"
	"io"
)

// ReduceSize is the number of inputs summed by PrivateLocalGlobal. Each
// work-item consumes a pair, so the launch has ReduceSize/2 work-items.
const ReduceSize = 8

// PrivateLocalGlobal sums a count-up vector on the device using global
// input/output buffers, a work-group local scratch array and a private
// accumulator, and returns the total (28 for 0..7).
func PrivateLocalGlobal(device *gocca.OCCADevice, out io.Writer, opts Options) (int32, error) {
	in := vectors.CountUp(ReduceSize)
	if opts.Verbose {
		vectors.Print(out, in)
	}
	sums := make([]int32, 1)

	err := launch{
		config: builder.Config{GlobalSize: []int{ReduceSize / 2}},
		source: reduceKernel,
		bindings: []*builder.ParamBuilder{
			builder.Input("in").Bind(in),
			builder.Output("out").Bind(sums),
		},
		params: func(kr *runner.Runner) []*runner.ParamConfig {
			return []*runner.ParamConfig{
				kr.Param("in"),
				kr.Param("out").CopyBack(),
			}
		},
	}.run(device)
	if err != nil {
		return 0, err
	}

	fmt.Fprintln(out, sums[0])

	if want := int32(floats.Sum(vectors.Floats(in))); sums[0] != want {
		return sums[0], mismatch("sum = %d, expected %d", sums[0], want)
	}
	return sums[0], nil
}
