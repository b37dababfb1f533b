package common

import (
	"fmt"
	"strings"
)

// DeviceType identifies the kind of lighting device reported by the service.
// The numeric value is sent on the wire, so the order of these constants must
// never change.
type DeviceType int

const (
	// DeviceMotherBoard is the mainboard's onboard lighting
	DeviceMotherBoard DeviceType = iota
	// DeviceKeyboard is a keyboard
	DeviceKeyboard
	// DeviceMouse is a mouse
	DeviceMouse
	// DeviceDram is a memory module
	DeviceDram
	// DeviceArgb is an addressable RGB header
	DeviceArgb
	// DeviceWaterCooler is a liquid cooler
	DeviceWaterCooler
	// DeviceVga is a graphics card
	DeviceVga
)

var deviceTypeNames = [...]string{
	DeviceMotherBoard: `MotherBoard`,
	DeviceKeyboard:    `Keyboard`,
	DeviceMouse:       `Mouse`,
	DeviceDram:        `Dram`,
	DeviceArgb:        `Argb`,
	DeviceWaterCooler: `WaterCooler`,
	DeviceVga:         `Vga`,
}

func (t DeviceType) String() string {
	if t < 0 || int(t) >= len(deviceTypeNames) {
		return fmt.Sprintf(`DeviceType(%d)`, int(t))
	}
	return deviceTypeNames[t]
}

// ParseDeviceType returns the DeviceType named s, ignoring case.
func ParseDeviceType(s string) (DeviceType, error) {
	for i, name := range deviceTypeNames {
		if strings.EqualFold(name, s) {
			return DeviceType(i), nil
		}
	}
	return 0, fmt.Errorf(`unknown device type %q`, s)
}

// MarshalText implements encoding.TextMarshaler
func (t DeviceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MarshalYAML renders the type by name for yaml output
func (t DeviceType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// DeviceInfo describes a single lighting device as reported by a scan.  Values
// are created fresh for every scan and are never updated afterwards.
type DeviceInfo struct {
	// Index is the position of the device in the scan response
	Index int `json:"index" yaml:"index"`
	// Name is the device name reported by the service
	Name string `json:"name" yaml:"name"`
	// Type is the device category
	Type DeviceType `json:"type" yaml:"type"`
	// SyncStatus reports whether the device participates in synchronized
	// effects
	SyncStatus bool `json:"sync" yaml:"sync"`
}
