package tutorials

import (
	"github.com/notargets/KernelTutorials/runner"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/KernelTutorials/vectors"
	"github.com/notargets/gocca"
	"gonum.org/v1/gonum/mat"
	"io"
)

const (
	// DimensionsSize is the edge length of the square grid
	DimensionsSize = 8
	// DimensionsLocalSize is the edge length of one work-group
	DimensionsLocalSize = 4
)

// Dimensions adds two count-up 8×8 grids over a 2-D launch of 2×2
// work-groups and returns the row-major sum grid.
func Dimensions(device *gocca.OCCADevice, out io.Writer, opts Options) ([]int32, error) {
	n := DimensionsSize
	bananas := vectors.CountUp2D(n, n)
	apples := vectors.CountUp2D(n, n)
	if opts.Verbose {
		if err := vectors.Print2D(out, bananas, n, n); err != nil {
			return nil, err
		}
		if err := vectors.Print2D(out, apples, n, n); err != nil {
			return nil, err
		}
	}

	// Host reference, taken before the device overwrites bananas
	a, err := vectors.ToDense(bananas, n, n)
	if err != nil {
		return nil, err
	}
	b, err := vectors.ToDense(apples, n, n)
	if err != nil {
		return nil, err
	}
	var sum mat.Dense
	sum.Add(a, b)

	err = launch{
		config: builder.Config{
			GlobalSize: []int{n, n},
			LocalSize:  []int{DimensionsLocalSize, DimensionsLocalSize},
		},
		source: dimensionsKernel,
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

	if err = vectors.Print2D(out, bananas, n, n); err != nil {
		return nil, err
	}

	return bananas, equalVectors("bananas", bananas, vectors.FromDense(&sum))
}
