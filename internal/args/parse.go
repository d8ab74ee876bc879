// Package args implements momobuild's positional command-line grammar.
//
//	momobuild [flag] [config] [subcmd] {executable_args...}
//
// Flags start with "/" and may appear anywhere before the executable
// arguments. The config must come before the subcommand. Once a run or srun
// subcommand has been seen, every remaining argument belongs to the program
// being run and is not interpreted.
package args

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/momobuild/internal/model"
)

// Invocation is the result of parsing one command line.
type Invocation struct {
	// Config is the requested build configuration. Empty when none was given.
	Config model.Config

	// Flag is the single flag given, or empty.
	Flag model.Flag

	// Subcommand is the single subcommand given, or empty (build only).
	Subcommand model.Subcommand

	// ProjectName is the optional argument of init.
	ProjectName string

	// ExecutableName overrides the solution name as the program started by
	// run/srun. Only set when the /ex flag was given.
	ExecutableName string

	// ExecutableArgs are forwarded to the program started by run/srun.
	ExecutableArgs []string
}

// HasConfig reports whether a configuration was given explicitly.
func (inv *Invocation) HasConfig() bool {
	return inv.Config != ""
}

// Has reports whether f was given.
func (inv *Invocation) Has(f model.Flag) bool {
	return inv.Flag == f
}

// Is reports whether s was given.
func (inv *Invocation) Is(s model.Subcommand) bool {
	return inv.Subcommand == s
}

// WantsHelp reports whether the usage text was requested, either through
// the help subcommand or the /h and /? flags.
func (inv *Invocation) WantsHelp() bool {
	return inv.Subcommand == model.SubcommandHelp || inv.Flag.IsHelp()
}

// parser holds the state of one Parse call.
type parser struct {
	rest []string
	inv  Invocation
}

// pop removes and returns the next argument.
func (p *parser) pop() (string, bool) {
	if len(p.rest) == 0 {
		return "", false
	}
	a := p.rest[0]
	p.rest = p.rest[1:]
	return a, true
}

// Parse interprets argv (without the program name). It stops at the first
// invalid argument and returns a *model.CLIError with ExitGeneralError.
func Parse(argv []string) (*Invocation, error) {
	p := &parser{rest: argv}

	for {
		a, ok := p.pop()
		if !ok {
			break
		}

		// Everything after run/srun belongs to the program being run.
		if p.inv.Subcommand.TakesExecutableArgs() {
			if p.inv.Flag == model.FlagExecutable && p.inv.ExecutableName == "" {
				p.inv.ExecutableName = a
				continue
			}
			p.inv.ExecutableArgs = append(p.inv.ExecutableArgs, a)
			continue
		}

		if strings.HasPrefix(a, "/") {
			if err := p.flag(a); err != nil {
				return nil, err
			}
			continue
		}

		if p.inv.Config == "" {
			if c, err := model.ParseConfig(a); err == nil {
				p.inv.Config = c
				continue
			}
		}

		if err := p.subcommand(a); err != nil {
			return nil, err
		}
	}

	return &p.inv, nil
}

func (p *parser) flag(a string) error {
	if p.inv.Flag != "" {
		return model.NewCLIError(model.ExitGeneralError, "Can only provide one flag at a time")
	}
	f, err := model.ParseFlag(a)
	if err != nil {
		return model.NewCLIError(model.ExitGeneralError, fmt.Sprintf("Invalid flag `%s`", a))
	}
	p.inv.Flag = f
	return nil
}

func (p *parser) subcommand(a string) error {
	if p.inv.Subcommand != "" {
		if model.Subcommand(a).IsValid() {
			return model.NewCLIError(model.ExitGeneralError, "Can only provide one subcommand at a time")
		}
		return model.NewCLIError(model.ExitGeneralError, fmt.Sprintf("Invalid subcommand `%s`", a))
	}

	s, err := model.ParseSubcommand(a)
	if err != nil {
		if p.inv.Config == "" {
			return model.NewCLIError(model.ExitGeneralError, fmt.Sprintf("Invalid config/subcommand `%s`", a))
		}
		return model.NewCLIError(model.ExitGeneralError, fmt.Sprintf("Invalid subcommand `%s`", a))
	}
	p.inv.Subcommand = s

	// init takes an optional project name; a following flag is left alone.
	if s == model.SubcommandInit && len(p.rest) > 0 && !strings.HasPrefix(p.rest[0], "/") {
		p.inv.ProjectName, _ = p.pop()
	}
	return nil
}
