// Package toolchain starts the external programs momobuild drives:
// premake5, MSBuild, the program that was just built and the tagging tool.
//
// Every program is started through a Runner, which waits for it to finish
// and reports a non-zero exit as an *ExitError. Toolchain turns those into
// *model.CLIError values carrying the child's exit code so the CLI can exit
// with exactly that code.
//
// Design decisions:
//   - The Runner interface exists so the CLI can be tested without premake
//     or MSBuild installed; ExecRunner is the only production implementation.
//   - Working directories are passed through exec.Cmd.Dir. momobuild never
//     changes its own working directory.
//   - srun on Windows bypasses os/exec (see runInNewConsole) because the
//     program must talk to its own console, not momobuild's.
package toolchain
