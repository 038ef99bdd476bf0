// Package platform models compute platform and device discovery and picks
// the device a program runs on.
package platform

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoPlatforms is returned when the host exposes no compute platform
	ErrNoPlatforms = errors.New("no compute platforms found")
	// ErrNoDevices is returned when the selected platform has no devices
	ErrNoDevices = errors.New("no devices found on platform")
)

// PlatformInfo describes one vendor driver stack
type PlatformInfo struct {
	Index   int
	Name    string
	Vendor  string
	Version string
}

func (p PlatformInfo) String() string {
	return fmt.Sprintf("%d - %s (%s) %s", p.Index, p.Name, p.Vendor, p.Version)
}

// DeviceInfo describes one processor reachable through a platform
type DeviceInfo struct {
	Index            int
	Name             string
	Type             string
	Vendor           string
	MaxWorkGroupSize int
}

func (d DeviceInfo) String() string {
	return fmt.Sprintf("%d - %s - %s (%s), max work-group size %d",
		d.Index, d.Type, d.Name, d.Vendor, d.MaxWorkGroupSize)
}

// Lister enumerates platforms and the devices of a platform
type Lister interface {
	Platforms() ([]PlatformInfo, error)
	Devices(platform int) ([]DeviceInfo, error)
}

// Selection is the platform/device pair a program runs on
type Selection struct {
	Platform PlatformInfo
	Device   DeviceInfo
}

// SelectFirst lists the available platforms, picks the first one, lists its
// devices and picks the first device. Headers are always written to out;
// the individual entries only when verbose is set.
func SelectFirst(l Lister, out io.Writer, verbose bool) (Selection, error) {
	var sel Selection

	platforms, err := l.Platforms()
	if err != nil {
		return sel, fmt.Errorf("listing platforms: %w", err)
	}
	fmt.Fprintln(out, "Platforms: ")
	if verbose {
		for _, p := range platforms {
			fmt.Fprintln(out, p)
		}
	}
	if len(platforms) == 0 {
		return sel, ErrNoPlatforms
	}
	sel.Platform = platforms[0]

	devices, err := l.Devices(sel.Platform.Index)
	if err != nil {
		return sel, fmt.Errorf("listing devices of %s: %w", sel.Platform.Name, err)
	}
	fmt.Fprintln(out, "Devices: ")
	if verbose {
		for _, d := range devices {
			fmt.Fprintln(out, d)
		}
	}
	if len(devices) == 0 {
		return sel, fmt.Errorf("%w %s", ErrNoDevices, sel.Platform.Name)
	}
	sel.Device = devices[0]

	return sel, nil
}
