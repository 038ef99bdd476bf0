// Package cli is the command line entry shared by the tutorial executables
package cli

import (
	"errors"
	"flag"
	"fmt"
	"github.com/notargets/KernelTutorials/platform"
	"github.com/notargets/KernelTutorials/platform/opencl"
	"github.com/notargets/KernelTutorials/tutorials"
	"io"
	"os"
)

// Config is the parsed command line of a tutorial executable
type Config struct {
	Mode    string
	Verbose bool
}

// ParseFlags reads -mode and -v from args
func ParseFlags(name string, args []string, errOut io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Mode, "mode", "OpenCL", "OCCA backend: `OpenCL`, CUDA, HIP, OpenMP or Serial")
	fs.BoolVar(&cfg.Verbose, "v", false, "Print generated inputs and the platform/device listings")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

// listerFor returns the discovery backend for a mode, nil for host modes
func listerFor(mode string) platform.Lister {
	if mode == "OpenCL" {
		return opencl.NewLister()
	}
	return nil
}

// Main runs one tutorial with the process arguments. Any failure is printed
// as "ERROR: <message>" on stdout and the process exits normally.
func Main(title string, run tutorials.Func) {
	Run(title, os.Args[1:], os.Stdout, os.Stderr, nil, run)
}

// Run parses args and runs the tutorial, reporting a failure as a single
// "ERROR: <message>" line on out. A nil lister selects the discovery backend
// from the -mode flag.
func Run(title string, args []string, out, errOut io.Writer, lister platform.Lister,
	run tutorials.Func) {
	if err := runMain(title, args, out, errOut, lister, run); err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
	}
}

func runMain(title string, args []string, out, errOut io.Writer, lister platform.Lister,
	run tutorials.Func) error {
	cfg, err := ParseFlags(title, args, errOut)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if lister == nil {
		lister = listerFor(cfg.Mode)
	}
	return tutorials.Execute(title, lister, cfg.Mode, out,
		tutorials.Options{Verbose: cfg.Verbose}, run)
}
