package main

import (
	"github.com/notargets/KernelTutorials/internal/cli"
	"github.com/notargets/KernelTutorials/tutorials"
	"github.com/notargets/gocca"
	"io"
)

func main() {
	cli.Main("Tutorial 5 - Local and Global work-items", func(device *gocca.OCCADevice, out io.Writer, opts tutorials.Options) error {
		_, _, err := tutorials.LocalGlobalWorkItems(device, out, opts)
		return err
	})
}
