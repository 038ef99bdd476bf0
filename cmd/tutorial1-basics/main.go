package main

import (
	"github.com/notargets/KernelTutorials/internal/cli"
	"github.com/notargets/KernelTutorials/tutorials"
	"github.com/notargets/gocca"
	"io"
)

func main() {
	cli.Main("Tutorial 1 - Basics", func(device *gocca.OCCADevice, out io.Writer, opts tutorials.Options) error {
		_, err := tutorials.Basics(device, out, opts)
		return err
	})
}
