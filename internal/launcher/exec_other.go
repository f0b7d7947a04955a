//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
)

// Exec runs the validator as a child and mirrors its exit code exactly,
// since this platform cannot replace the process image. Interrupts are
// left to the shared console so the child sees them directly.
func Exec(plan Plan) error {
	argv := plan.Argv()
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return &LaunchError{Binary: argv[0], Err: err}
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	signal.Ignore(os.Interrupt)
	if err := cmd.Start(); err != nil {
		return &LaunchError{Binary: argv[0], Err: err}
	}
	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return &LaunchError{Binary: argv[0], Err: err}
	}
	os.Exit(0)
	return nil
}
