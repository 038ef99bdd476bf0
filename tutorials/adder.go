package tutorials

import (
	"github.com/notargets/KernelTutorials/runner"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/KernelTutorials/vectors"
	"github.com/notargets/gocca"
	"io"
)

// AdderSize is the vector length of the Adder tutorial
const AdderSize = 8

// Adder adds two count-up vectors elementwise into the first one and
// returns it: [0, 2, 4, ..., 14].
func Adder(device *gocca.OCCADevice, out io.Writer, opts Options) ([]int32, error) {
	bananas := vectors.CountUp(AdderSize)
	apples := vectors.CountUp(AdderSize)
	if opts.Verbose {
		vectors.Print(out, bananas)
		vectors.Print(out, apples)
	}

	err := launch{
		config: builder.Config{GlobalSize: []int{AdderSize}},
		source: adderKernel,
		bindings: []*builder.ParamBuilder{
			builder.InOut("bananas").Bind(bananas),
			builder.Input("apples").Bind(apples),
		},
		params: func(kr *runner.Runner) []*runner.ParamConfig {
			return []*runner.ParamConfig{
				kr.Param("bananas").CopyBack(),
				kr.Param("apples"),
			}
		},
	}.run(device)
	if err != nil {
		return nil, err
	}

	vectors.Print(out, bananas)

	want := make([]int32, AdderSize)
	for i := range want {
		want[i] = 2 * int32(i)
	}
	return bananas, equalVectors("bananas", bananas, want)
}
