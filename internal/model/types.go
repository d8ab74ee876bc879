package model

import (
	"fmt"
)

// Config is a build configuration of the generated Visual Studio solution.
type Config string

const (
	// ConfigDebug is the default configuration.
	ConfigDebug Config = "Debug"

	// ConfigRelease builds optimized binaries.
	ConfigRelease Config = "Release"

	// ConfigAll builds Debug and then Release.
	ConfigAll Config = "All"
)

// String returns the literal used on the command line and by MSBuild.
func (c Config) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known configurations.
// Matching is case-sensitive, like MSBuild's configuration names.
func (c Config) IsValid() bool {
	switch c {
	case ConfigDebug, ConfigRelease, ConfigAll:
		return true
	default:
		return false
	}
}

// Targets expands c into the concrete configurations MSBuild is run for.
// ConfigAll expands to Debug followed by Release.
func (c Config) Targets() []Config {
	if c == ConfigAll {
		return []Config{ConfigDebug, ConfigRelease}
	}
	return []Config{c}
}

// RunTarget returns the configuration whose output directory is used when
// running or opening the built program. There is no bin/All directory, so
// ConfigAll maps to Debug.
func (c Config) RunTarget() Config {
	if c == ConfigAll || c == "" {
		return ConfigDebug
	}
	return c
}

// ParseConfig converts a command-line argument to a Config.
func ParseConfig(s string) (Config, error) {
	c := Config(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid config: %q (valid: Debug, Release, All)", s)
	}
	return c, nil
}

// Flag is a single slash-prefixed option. Only one flag is accepted per
// invocation.
type Flag string

const (
	// FlagQuiet suppresses momobuild's own output and the output of
	// premake5 and MSBuild.
	FlagQuiet Flag = "/Q"

	// FlagRedist copies the Visual C++ redistributables to .\redist.
	FlagRedist Flag = "/Rdst"

	// FlagHelp is the same as the help subcommand.
	FlagHelp Flag = "/h"

	// FlagHelpAlt is an alias of FlagHelp.
	FlagHelpAlt Flag = "/?"

	// FlagNoBuild skips premake5 and MSBuild.
	FlagNoBuild Flag = "/nb"

	// FlagExecutable makes the first argument after run/srun the name of
	// the executable to start instead of the solution name.
	FlagExecutable Flag = "/ex"

	// FlagVersion prints the version.
	FlagVersion Flag = "/v"

	// FlagYes answers yes to every confirmation.
	FlagYes Flag = "/Y"
)

// Flags lists every accepted flag in help-text order.
var Flags = []Flag{
	FlagQuiet, FlagRedist, FlagHelp, FlagHelpAlt,
	FlagNoBuild, FlagExecutable, FlagVersion, FlagYes,
}

// String returns the flag literal.
func (f Flag) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known flags.
func (f Flag) IsValid() bool {
	for _, known := range Flags {
		if f == known {
			return true
		}
	}
	return false
}

// IsHelp reports whether f requests the usage text.
func (f Flag) IsHelp() bool {
	return f == FlagHelp || f == FlagHelpAlt
}

// ParseFlag converts a command-line argument to a Flag.
func ParseFlag(s string) (Flag, error) {
	f := Flag(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid flag: %q", s)
	}
	return f, nil
}

// Subcommand is the action requested on the command line. At most one
// subcommand is accepted per invocation; without one, momobuild builds.
type Subcommand string

const (
	SubcommandHelp  Subcommand = "help"
	SubcommandInit  Subcommand = "init"
	SubcommandReset Subcommand = "reset"
	SubcommandRun   Subcommand = "run"
	SubcommandSrun  Subcommand = "srun"
	SubcommandDir   Subcommand = "dir"
	SubcommandClean Subcommand = "clean"
	SubcommandSln   Subcommand = "sln"
	SubcommandEtags Subcommand = "etags"
)

// Subcommands lists every accepted subcommand in help-text order.
var Subcommands = []Subcommand{
	SubcommandHelp, SubcommandInit, SubcommandReset, SubcommandRun,
	SubcommandSrun, SubcommandDir, SubcommandClean, SubcommandSln,
	SubcommandEtags,
}

// String returns the subcommand literal.
func (s Subcommand) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known subcommands.
func (s Subcommand) IsValid() bool {
	for _, known := range Subcommands {
		if s == known {
			return true
		}
	}
	return false
}

// TakesExecutableArgs reports whether the arguments following s are
// forwarded to the built program.
func (s Subcommand) TakesExecutableArgs() bool {
	return s == SubcommandRun || s == SubcommandSrun
}

// ParseSubcommand converts a command-line argument to a Subcommand.
func ParseSubcommand(s string) (Subcommand, error) {
	sub := Subcommand(s)
	if !sub.IsValid() {
		return "", fmt.Errorf("invalid subcommand: %q", s)
	}
	return sub, nil
}

// ExitCode is a process exit status. Codes other than the two constants
// below come from child processes and are passed through unchanged.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError is used for every error raised by momobuild itself.
	ExitGeneralError ExitCode = 1
)

// CLIError is an error that carries the exit code momobuild terminates with.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description. An empty message
	// means the error is only an exit status and nothing is printed.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the message, followed by the underlying error if present.
func (e *CLIError) Error() string {
	if e.Message == "" && e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Silent reports whether the error carries nothing to print.
func (e *CLIError) Silent() bool {
	return e.Message == ""
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ExitStatus creates a silent CLIError that makes momobuild exit with code,
// typically the exit code of the program started by run or srun.
func ExitStatus(code int) *CLIError {
	return &CLIError{Code: ExitCode(code)}
}
