package xsetwacom

import (
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultBinary is the executable consulted for every device operation.
const DefaultBinary = "xsetwacom"

// CommandRunner abstracts execution of the external configuration utility
// so device operations can be tested without a tablet attached.
type CommandRunner interface {
	// Run invokes the utility with the given arguments and returns its
	// stdout. The call blocks until the utility exits.
	Run(args ...string) (string, error)
}

// execRunner runs the real binary via os/exec.
type execRunner struct {
	binary string
	logger *zap.Logger
}

func (r *execRunner) Run(args ...string) (string, error) {
	out, err := exec.Command(r.binary, args...).Output()
	output := string(out)

	fields := []zap.Field{
		zap.String("binary", r.binary),
		zap.Strings("args", args),
		zap.String("output", trimForLog(output)),
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		fields = append(fields,
			zap.Int("exit_code", exitErr.ExitCode()),
			zap.String("stderr", trimForLog(string(exitErr.Stderr))),
		)
	}
	if err != nil {
		r.logger.Debug("command failed", fields...)
		return output, &CommandError{Args: args, Output: output, Err: err}
	}
	r.logger.Debug("command complete", fields...)
	return output, nil
}

// trimForLog truncates command output for debug logging.
func trimForLog(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 256 {
		return s[:256] + "..."
	}
	return s
}

// Client drives the xsetwacom utility for one run of the program.
type Client struct {
	runner CommandRunner
	logger *zap.Logger
}

// NewClient verifies the xsetwacom binary is present on PATH and returns a
// client that shells out to it. A missing binary yields *ToolMissingError.
func NewClient(logger *zap.Logger) (*Client, error) {
	path, err := exec.LookPath(DefaultBinary)
	if err != nil {
		return nil, &ToolMissingError{Binary: DefaultBinary, Err: err}
	}

	logger.Debug("resolved configuration utility", zap.String("path", path))

	return &Client{
		runner: &execRunner{binary: path, logger: logger},
		logger: logger,
	}, nil
}

// NewClientWithRunner returns a client backed by a custom runner. Used by
// tests and by callers that need a nonstandard binary location.
func NewClientWithRunner(runner CommandRunner, logger *zap.Logger) *Client {
	return &Client{runner: runner, logger: logger}
}
