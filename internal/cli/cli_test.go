package cli

import (
	"bytes"
	"errors"
	"github.com/notargets/KernelTutorials/platform"
	"github.com/notargets/KernelTutorials/tutorials"
	"github.com/notargets/gocca"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags("t", nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: "OpenCL"}, cfg)

	cfg, err = ParseFlags("t", []string{"-mode", "Serial", "-v"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: "Serial", Verbose: true}, cfg)

	_, err = ParseFlags("t", []string{"-bogus"}, io.Discard)
	assert.Error(t, err)

	_, err = ParseFlags("t", []string{"extra"}, io.Discard)
	assert.Error(t, err)
}

func TestListerFor(t *testing.T) {
	assert.NotNil(t, listerFor("OpenCL"))
	assert.Nil(t, listerFor("Serial"))
	assert.Nil(t, listerFor("OpenMP"))
}

func TestRunMain(t *testing.T) {
	t.Run("Help", func(t *testing.T) {
		var errOut bytes.Buffer
		err := runMain("t", []string{"-h"}, io.Discard, &errOut, nil, nil)
		assert.NoError(t, err)
		assert.Contains(t, errOut.String(), "-mode")
	})

	t.Run("SerialMode", func(t *testing.T) {
		var out bytes.Buffer
		var mode string
		err := runMain("Tutorial 0", []string{"-mode", "Serial"}, &out, io.Discard, nil,
			func(device *gocca.OCCADevice, w io.Writer, opts tutorials.Options) error {
				mode = device.Mode()
				return nil
			})
		require.NoError(t, err)
		assert.Equal(t, "Serial", mode)
		assert.Contains(t, out.String(), "----------------Tutorial 0----------------")
	})
}

// emptyLister models a host with no OpenCL drivers installed
type emptyLister struct{}

func (emptyLister) Platforms() ([]platform.PlatformInfo, error) { return nil, nil }

func (emptyLister) Devices(int) ([]platform.DeviceInfo, error) { return nil, nil }

func TestRun_ReportsErrors(t *testing.T) {
	t.Run("NoPlatforms", func(t *testing.T) {
		var out bytes.Buffer
		called := false
		Run("Tutorial 1 - Basics", nil, &out, io.Discard, emptyLister{},
			func(*gocca.OCCADevice, io.Writer, tutorials.Options) error {
				called = true
				return nil
			})

		assert.False(t, called)
		assert.Equal(t,
			"----------------Tutorial 1 - Basics----------------\n"+
				"Platforms: \n"+
				"ERROR: no compute platforms found\n",
			out.String())
	})

	t.Run("TutorialFailure", func(t *testing.T) {
		var out bytes.Buffer
		Run("t", []string{"-mode", "Serial"}, &out, io.Discard, nil,
			func(*gocca.OCCADevice, io.Writer, tutorials.Options) error {
				return errors.New("kernel failed")
			})

		assert.True(t, bytes.HasSuffix(out.Bytes(), []byte("ERROR: kernel failed\n")))
	})

	t.Run("BadFlag", func(t *testing.T) {
		var out bytes.Buffer
		Run("t", []string{"-bogus"}, &out, io.Discard, nil, nil)
		assert.Contains(t, out.String(), "ERROR: flag provided but not defined: -bogus")
	})

	t.Run("Help", func(t *testing.T) {
		var out bytes.Buffer
		Run("t", []string{"-h"}, &out, io.Discard, nil, nil)
		assert.Empty(t, out.String())
	})
}
