// Package cli implements the momobuild command line.
//
// momobuild does not follow the usual "--flag" conventions: its grammar is
// positional ("momobuild [flag] [config] [subcmd] {executable_args...}")
// and flags are Windows-style ("/Q", "/nb"). Cobra still provides the entry
// point and error plumbing, but flag parsing is disabled so that every
// argument reaches the args package untouched.
//
// Each subcommand is implemented in its own file within this package. This
// file defines the root command and maps errors to exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/momobuild/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package.
var (
	// Version is the version printed by the /v flag (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates the root cobra command wired to the real
// terminal, file system and external tools.
func NewRootCommand() *cobra.Command {
	return newRootCommand(NewApp())
}

// newRootCommand creates the root command for app. Tests use it to inject
// fake tools and buffers.
func newRootCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "momobuild [flag] [config] [subcmd] {executable_args...}",
		Short: "Scaffold, build and run premake5/MSBuild C++ projects",
		Long: `momobuild wraps premake5 and MSBuild. It creates a project layout, generates
the Visual Studio solution, builds it and runs the resulting program,
exiting with the program's exit code.

Run "momobuild help" for the full list of configs, flags and subcommands.`,

		// The positional grammar is parsed by the args package, so cobra must
		// not interpret "/Q" or anything that looks like a flag.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors leaves error output to Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), args)
		},
	}
}

// Execute runs the root command and exits with the appropriate code.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes (for run and srun, the exit
// code of the program that was started); other errors exit with code 1.
func Execute(rootCmd *cobra.Command) {
	if code := exitCode(rootCmd.Execute(), os.Stderr); code != int(model.ExitSuccess) {
		os.Exit(code)
	}
}

// exitCode reports err on w and returns the code momobuild should exit with.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return int(model.ExitSuccess)
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if !cliErr.Silent() {
			printError(w, cliErr.Error())
		}
		return int(cliErr.Code)
	}

	printError(w, err.Error())
	return int(model.ExitGeneralError)
}

// printError writes "ERROR: <message>" on w.
func printError(w io.Writer, message string) {
	fmt.Fprintf(w, "ERROR: %s\n", message)
}
