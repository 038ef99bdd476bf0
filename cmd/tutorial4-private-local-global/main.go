package main

import (
	"github.com/notargets/KernelTutorials/internal/cli"
	"github.com/notargets/KernelTutorials/tutorials"
	"github.com/notargets/gocca"
	"io"
)

func main() {
	cli.Main("Tutorial 4 - Private, Local and Global memory", func(device *gocca.OCCADevice, out io.Writer, opts tutorials.Options) error {
		_, err := tutorials.PrivateLocalGlobal(device, out, opts)
		return err
	})
}
