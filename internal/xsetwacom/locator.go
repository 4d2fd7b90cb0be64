package xsetwacom

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/korvala/padmap/internal/mapping"
)

// deviceLine matches one enumeration line, capturing name, id, and type:
//
//	Wacom Intuos Pro M Pad pad      id: 21  type: PAD
var deviceLine = regexp.MustCompile(`^(.+?)\s+id:\s+(\d+)\s+type:\s+(.*?)\s*$`)

// Device is one entry from `xsetwacom --list devices`.
type Device struct {
	// Name is the display name; it may contain internal whitespace.
	Name string
	// ID is the numeric device id, kept as a string because it is only
	// ever passed back to the utility verbatim.
	ID string
	// Type is the device class token, e.g. "PAD".
	Type string
}

// ListDevices enumerates all currently attached devices. Output lines that
// do not parse as a device entry are skipped.
func (c *Client) ListDevices() ([]Device, error) {
	out, err := c.runner.Run("--list", "devices")
	if err != nil {
		return nil, err
	}

	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		m := deviceLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		devices = append(devices, Device{Name: m[1], ID: m[2], Type: m[3]})
	}

	c.logger.Debug("enumerated devices", zap.Int("count", len(devices)))
	return devices, nil
}

// FindDevice resolves a descriptor to a device id: the id of the first
// enumerated device whose name and type both exactly match. Matching is
// case-sensitive. Returns *DeviceNotFoundError when nothing matches. The id
// is only valid for the current run.
func (c *Client) FindDevice(desc mapping.Descriptor) (string, error) {
	devices, err := c.ListDevices()
	if err != nil {
		return "", err
	}

	for _, d := range devices {
		if d.Name == desc.Name && d.Type == desc.Type {
			c.logger.Debug("resolved device",
				zap.String("name", d.Name),
				zap.String("type", d.Type),
				zap.String("id", d.ID),
			)
			return d.ID, nil
		}
	}

	return "", &DeviceNotFoundError{Descriptor: desc}
}
