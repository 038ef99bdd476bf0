package tutorials

import (
	"fmt"
	"github.com/notargets/KernelTutorials/runner"
	"github.com/notargets/KernelTutorials/runner/builder"
	"github.com/notargets/KernelTutorials/vectors"
	"github.com/notargets/gocca"
	"io"
)

// BasicsSize is the number of work-items and elements in the Basics tutorial
const BasicsSize = 64

// Basics uploads 64 ones, adds 6 to each on the device and returns the
// read-back array, which must be all sevens.
func Basics(device *gocca.OCCADevice, out io.Writer, opts Options) ([]int32, error) {
	bananas := vectors.Fill(BasicsSize, 1)
	if opts.Verbose {
		vectors.Print(out, bananas)
	}

	err := launch{
		config:   builder.Config{GlobalSize: []int{BasicsSize}},
		source:   basicsKernel,
		bindings: []*builder.ParamBuilder{builder.InOut("bananas").Bind(bananas)},
		params: func(kr *runner.Runner) []*runner.ParamConfig {
			return []*runner.ParamConfig{kr.Param("bananas").CopyBack()}
		},
	}.run(device)
	if err != nil {
		return nil, err
	}

	fmt.Fprint(out, "[")
	for _, banana := range bananas {
		fmt.Fprintf(out, "%d, ", banana)
	}
	fmt.Fprintln(out, "]")

	return bananas, equalVectors("bananas", bananas, vectors.Fill(BasicsSize, 7))
}
