package utils

import (
	"github.com/notargets/KernelTutorials/platform"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceProps(t *testing.T) {
	sel := platform.Selection{
		Platform: platform.PlatformInfo{Index: 1},
		Device:   platform.DeviceInfo{Index: 2},
	}

	testCases := []struct {
		mode     string
		expected string
	}{
		{"OpenCL", `{"mode": "OpenCL", "platform_id": 1, "device_id": 2}`},
		{"CUDA", `{"mode": "CUDA", "device_id": 2}`},
		{"HIP", `{"mode": "HIP", "device_id": 2}`},
		{"OpenMP", `{"mode": "OpenMP"}`},
		{"Serial", `{"mode": "Serial"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.mode, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeviceProps(tc.mode, sel))
		})
	}
}

func TestCreateDevice(t *testing.T) {
	t.Run("NoProps", func(t *testing.T) {
		_, err := CreateDevice()
		assert.Error(t, err)
	})

	t.Run("FallsBackToSerial", func(t *testing.T) {
		device, err := CreateDevice(`{"mode": "NoSuchBackend"}`, `{"mode": "Serial"}`)
		require.NoError(t, err)
		defer device.Free()

		assert.Equal(t, "Serial", device.Mode())
	})
}

func TestCreateTestDevice(t *testing.T) {
	device := CreateTestDevice()
	require.NotNil(t, device)
	defer device.Free()

	assert.Contains(t, []string{"OpenMP", "CUDA", "Serial"}, device.Mode())
}
