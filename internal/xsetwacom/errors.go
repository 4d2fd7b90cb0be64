package xsetwacom

import (
	"fmt"

	"github.com/korvala/padmap/internal/mapping"
)

// ToolMissingError indicates the xsetwacom binary was not found on PATH.
// This is fatal: no device operation can be attempted without it.
type ToolMissingError struct {
	// Binary is the executable name that was searched for.
	Binary string
	// Err is the underlying lookup error.
	Err error
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("couldn't find executable: %s", e.Binary)
}

func (e *ToolMissingError) Unwrap() error {
	return e.Err
}

// DeviceNotFoundError indicates that no enumerated device matched the
// descriptor. The run must abort without attempting further operations.
type DeviceNotFoundError struct {
	// Descriptor is the name/type pair that was searched for.
	Descriptor mapping.Descriptor
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find device: %s, type: %s", e.Descriptor.Name, e.Descriptor.Type)
}

// CommandError indicates that an xsetwacom invocation itself failed, e.g.
// the process could not be started or exited nonzero.
type CommandError struct {
	// Args are the arguments the binary was invoked with.
	Args []string
	// Output is whatever the command produced on stdout before failing.
	Output string
	// Err is the underlying execution error.
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("xsetwacom %v failed: %v", e.Args, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
