//go:build !windows

package toolchain

import "context"

// runInNewConsole runs cmd like any other command. Only Windows opens a
// separate console; a terminal program here keeps momobuild's terminal.
func (r *ExecRunner) runInNewConsole(ctx context.Context, cmd Command) error {
	return r.run(ctx, cmd)
}
