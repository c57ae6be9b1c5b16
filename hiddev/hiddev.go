// Package hiddev discovers and opens the keypad's vendor HID interface and
// adapts it to the keypad.HidIO capability.
package hiddev

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sstallion/go-hid"

	"github.com/uk-taniyama/keypad-mapper/keypad"
)

// Default identifiers of the common CH57x-style keypads.
const (
	DefaultVendorID  uint16 = 0x1189
	DefaultProductID uint16 = 0x8890
)

// The configuration protocol lives on a vendor-defined usage page; the
// boot keyboard/mouse interfaces of the same device must not be opened.
const vendorUsagePageMin = 0xff00

// Filter narrows device discovery. A non-empty Path matches exactly one
// device and skips the vendor/usage checks.
type Filter struct {
	VendorID  uint16
	ProductID uint16
	Path      string
}

// List enumerates the vendor interfaces of all attached matching keypads.
func List(f Filter) ([]hid.DeviceInfo, error) {
	var found []hid.DeviceInfo
	err := hid.Enumerate(f.VendorID, f.ProductID, func(info *hid.DeviceInfo) error {
		if f.Path != "" {
			if info.Path == f.Path {
				found = append(found, *info)
			}
			return nil
		}
		if info.UsagePage < vendorUsagePageMin {
			return nil
		}
		found = append(found, *info)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate hid devices: %w", err)
	}
	return found, nil
}

// Device adapts one open go-hid handle to keypad.HidIO. It is exclusively
// owned by one session at a time.
type Device struct {
	dev  *hid.Device
	path string
	log  *slog.Logger
}

// Open opens the device at path. A nil logger falls back to slog.Default.
func Open(path string, log *slog.Logger) (*Device, error) {
	if log == nil {
		log = slog.Default()
	}
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	log.Debug("device opened", "path", path)
	return &Device{dev: dev, path: path, log: log}, nil
}

// Write sends one report to the device.
func (d *Device) Write(p []byte) (int, error) {
	return d.dev.Write(p)
}

// Read returns the next report from the device, or an empty slice when the
// timeout elapses without data.
func (d *Device) Read(timeout time.Duration) ([]byte, error) {
	buf := make([]byte, keypad.ReportSize)
	n, err := d.dev.ReadWithTimeout(buf, timeout)
	if err != nil {
		return nil, err
	}
	// hid_read_timeout reports a timeout as a zero-length read.
	return buf[:n], nil
}

// Path returns the platform device path this handle was opened from.
func (d *Device) Path() string { return d.path }

// Close releases the handle.
func (d *Device) Close() error {
	d.log.Debug("device closed", "path", d.path)
	return d.dev.Close()
}
