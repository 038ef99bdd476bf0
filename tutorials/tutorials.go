// Package tutorials holds the five kernel dispatch walkthroughs. Each one
// allocates its buffers, builds an inline kernel, launches it once, blocks
// for the result, reads it back and prints it, then checks the device
// output against a host reference.
package tutorials

import (
	"errors"
	"fmt"
	"github.com/notargets/KernelTutorials/platform"
	"github.com/notargets/KernelTutorials/utils"
	"github.com/notargets/gocca"
	"io"
	"log"
)

// ErrMismatch is returned when a device result differs from the host reference
var ErrMismatch = errors.New("device result does not match host reference")

// Options controls what a tutorial prints besides its result
type Options struct {
	// Verbose prints generated inputs and the platform/device listings
	Verbose bool
}

// Func is the body of one tutorial, run on an already opened device
type Func func(device *gocca.OCCADevice, out io.Writer, opts Options) error

// Execute runs the setup sequence shared by every tutorial: discover the
// platforms, pick the first device, open it in the requested OCCA mode and
// hand it to run. Discovery is skipped when lister is nil, which is the
// case for host backends such as Serial and OpenMP.
func Execute(title string, lister platform.Lister, mode string, out io.Writer,
	opts Options, run Func) error {
	fmt.Fprintf(out, "----------------%s----------------\n", title)

	var sel platform.Selection
	if lister != nil {
		var err error
		if sel, err = platform.SelectFirst(lister, out, opts.Verbose); err != nil {
			return err
		}
		if opts.Verbose {
			log.Printf("Using platform %q, device %q", sel.Platform.Name, sel.Device.Name)
		}
	}

	device, err := utils.CreateDevice(utils.DeviceProps(mode, sel))
	if err != nil {
		return err
	}
	defer device.Free()
	if opts.Verbose {
		log.Printf("Created %s Device", device.Mode())
	}

	return run(device, out, opts)
}

func mismatch(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMismatch, fmt.Sprintf(format, args...))
}

// equalVectors reports the first index at which got differs from want
func equalVectors(name string, got, want []int32) error {
	if len(got) != len(want) {
		return mismatch("%s has length %d, expected %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return mismatch("%s[%d] = %d, expected %d", name, i, got[i], want[i])
		}
	}
	return nil
}
