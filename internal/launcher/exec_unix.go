//go:build !windows

package launcher

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with the validator, so signals,
// stdio, and the exit code belong to it directly. Returns only on failure.
func Exec(plan Plan) error {
	argv := plan.Argv()
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return &LaunchError{Binary: argv[0], Err: err}
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return &LaunchError{Binary: argv[0], Err: err}
	}
	return nil
}
