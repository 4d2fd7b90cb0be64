// Package xsetwacom drives the external xsetwacom configuration utility.
//
// All device operations shell out to the xsetwacom binary: device
// enumeration (`xsetwacom --list devices`), state reads (`xsetwacom get`),
// and state writes (`xsetwacom set`). The Client verifies the binary is on
// PATH once at construction; a missing binary is reported as a
// *ToolMissingError and is fatal to the run.
//
// # Device Resolution
//
// ListDevices parses the line-oriented enumeration output, one device per
// line in the form:
//
//	Wacom Intuos Pro M Pad pad      id: 21  type: PAD
//
// Lines that do not match this shape are skipped, not treated as errors.
// FindDevice returns the id of the first device whose name and type both
// exactly match a descriptor; matching is case-sensitive. Device ids are
// only valid within a single run and are never cached.
//
// # State Reads and Writes
//
// Get returns the raw observed value of one setting, untrimmed, so callers
// can display exactly what the tool reported. Set issues the corresponding
// write; its exit status is deliberately not a success signal, since the
// utility's return code is unreliable. Callers that need a guarantee should
// re-read the setting after writing.
//
// Every invocation is a blocking call with no timeout; the process waits
// for the utility to exit. Commands are logged at debug level.
package xsetwacom
