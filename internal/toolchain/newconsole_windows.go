//go:build windows

package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/shinji-kodama/momobuild/internal/model"
)

// runInNewConsole starts cmd with CREATE_NEW_CONSOLE and waits for it.
//
// os/exec always hands the child momobuild's standard handles
// (STARTF_USESTDHANDLES), which would leave the new console window empty.
// CreateProcess is called directly so the child uses the handles of its own
// console. Quiet and Stdin do not apply.
func (r *ExecRunner) runInNewConsole(ctx context.Context, cmd Command) error {
	path, err := exec.LookPath(cmd.Path)
	if err != nil {
		return startError(cmd, err)
	}

	appName, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return startError(cmd, err)
	}
	cmdLine, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(append([]string{path}, cmd.Args...)))
	if err != nil {
		return startError(cmd, err)
	}
	var dir *uint16
	if cmd.Dir != "" {
		if dir, err = windows.UTF16PtrFromString(cmd.Dir); err != nil {
			return startError(cmd, err)
		}
	}

	si := &windows.StartupInfo{Cb: uint32(unsafe.Sizeof(windows.StartupInfo{}))}
	var pi windows.ProcessInformation
	err = windows.CreateProcess(appName, cmdLine, nil, nil, false,
		windows.CREATE_NEW_CONSOLE, nil, dir, si, &pi)
	if err != nil {
		return startError(cmd, err)
	}
	defer windows.CloseHandle(pi.Thread)
	defer windows.CloseHandle(pi.Process)

	// Cancelling ctx terminates the program, as exec.CommandContext does.
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			_ = windows.TerminateProcess(pi.Process, uint32(model.ExitGeneralError))
		case <-done:
		}
	}()

	_, err = windows.WaitForSingleObject(pi.Process, windows.INFINITE)
	close(done)
	<-stopped
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("Could not wait for %s", cmd.Name), err)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(pi.Process, &code); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("Could not read the exit code of %s", cmd.Name), err)
	}
	if code != 0 {
		return &ExitError{Name: cmd.Name, Code: int(code)}
	}
	return nil
}
