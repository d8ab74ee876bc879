//go:build !windows

package shell

import (
	"os/exec"
	"runtime"
)

// open starts the desktop's opener without waiting for the opened program.
func open(path string) error {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}

	// #nosec G204 -- path is a file inside the project
	cmd := exec.Command(name, path)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
