package utils

import (
	"fmt"
	"github.com/notargets/KernelTutorials/platform"
	"github.com/notargets/gocca"
	"strings"
)

// DeviceProps builds the OCCA device properties for a backend mode. GPU
// modes address the selected platform and device; host modes ignore them.
func DeviceProps(mode string, sel platform.Selection) string {
	switch mode {
	case "OpenCL":
		return fmt.Sprintf(`{"mode": "OpenCL", "platform_id": %d, "device_id": %d}`,
			sel.Platform.Index, sel.Device.Index)
	case "CUDA", "HIP":
		return fmt.Sprintf(`{"mode": "%s", "device_id": %d}`, mode, sel.Device.Index)
	default:
		return fmt.Sprintf(`{"mode": "%s"}`, mode)
	}
}

// CreateDevice opens the first device whose properties OCCA accepts
func CreateDevice(props ...string) (*gocca.OCCADevice, error) {
	if len(props) == 0 {
		return nil, fmt.Errorf("no device properties given")
	}

	var failures []string
	for _, p := range props {
		device, err := gocca.NewDevice(p)
		if err == nil {
			return device, nil
		}
		failures = append(failures, fmt.Sprintf("%s: %v", p, err))
	}
	return nil, fmt.Errorf("failed to create device: %s", strings.Join(failures, "; "))
}

// CreateTestDevice creates a Device for testing, preferring parallel backends
func CreateTestDevice() *gocca.OCCADevice {
	device, err := CreateDevice(
		`{"mode": "OpenMP"}`,
		`{"mode": "CUDA", "device_id": 0}`,
		`{"mode": "Serial"}`,
	)
	if err != nil {
		// Serial is always built into OCCA
		panic(err)
	}
	fmt.Printf("Created %s Device\n", device.Mode())
	return device
}
