package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shinji-kodama/momobuild/internal/args"
	"github.com/shinji-kodama/momobuild/internal/config"
	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
	"github.com/shinji-kodama/momobuild/internal/prompt"
	"github.com/shinji-kodama/momobuild/internal/shell"
	"github.com/shinji-kodama/momobuild/internal/toolchain"
)

// progressName prefixes progress lines.
const progressName = "momobuild"

// App holds everything one momobuild invocation talks to. The zero value
// is not usable; NewApp wires the real environment.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getwd returns the directory momobuild was started in.
	Getwd func() (string, error)

	// Home is the user's home directory, searched for a settings file.
	Home string

	// Settings, when set, is used instead of loading settings from Home.
	Settings *config.Settings

	// Runner starts external programs.
	Runner toolchain.Runner

	// Opener hands files to the OS shell.
	Opener shell.Opener

	// Per-invocation state, set by Run.
	inv      *args.Invocation
	settings *config.Settings
	tools    *toolchain.Toolchain
	root     string
}

// NewApp returns an App connected to the process's standard streams, the
// real file system and the real external tools.
func NewApp() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getwd:  os.Getwd,
		Home:   userHome(),
		Runner: &toolchain.ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		Opener: shell.SystemOpener{},
	}
}

// userHome returns $HOME when it is set, as Emacs does, and the OS notion
// of the home directory (%USERPROFILE% on Windows) otherwise.
func userHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// Run executes one invocation. argv excludes the program name. Steps run in
// a fixed order and the first failure ends the invocation.
func (a *App) Run(ctx context.Context, argv []string) error {
	inv, err := args.Parse(argv)
	if err != nil {
		return err
	}
	a.inv = inv

	// Help needs neither settings nor a project.
	if inv.WantsHelp() {
		a.printHelp()
		return nil
	}

	if err := a.loadSettings(); err != nil {
		return err
	}

	if inv.Has(model.FlagVersion) {
		fmt.Fprintf(a.Stdout, "Momobuild Version %s\n", Version)
		a.VerboseLog("commit %s, built %s", Commit, Date)
		return nil
	}

	if inv.Is(model.SubcommandInit) {
		return a.runInit()
	}

	if err := a.enterProject(); err != nil {
		return err
	}

	switch {
	case inv.Is(model.SubcommandClean):
		return a.runClean()
	case inv.Is(model.SubcommandReset):
		return a.runReset()
	}

	// Without an explicit config, Debug is used and run/srun start the
	// existing binary without rebuilding it.
	cfg := inv.Config
	build := !inv.Has(model.FlagNoBuild)
	if !inv.HasConfig() {
		cfg = model.ConfigDebug
		if inv.Subcommand.TakesExecutableArgs() {
			build = false
		}
	}
	a.VerboseLog("config %s, build %t", cfg, build)

	switch {
	case inv.Has(model.FlagRedist):
		return a.runRedist()
	case inv.Is(model.SubcommandSln):
		return a.runSln()
	case inv.Is(model.SubcommandDir):
		return a.runDir(cfg)
	case inv.Is(model.SubcommandEtags):
		return a.runEtags(ctx)
	}

	if build {
		if err := a.runBuild(ctx, cfg); err != nil {
			return err
		}
	}

	if inv.Subcommand.TakesExecutableArgs() {
		return a.runProgram(ctx, cfg)
	}
	return nil
}

// loadSettings layers the user settings and sets up the toolchain.
func (a *App) loadSettings() error {
	settings := a.Settings
	if settings == nil {
		var err error
		settings, err = config.Load(a.Home)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "Could not load settings", err)
		}
	}
	a.settings = settings
	a.tools = toolchain.New(settings, &loggingRunner{next: a.Runner, log: a.VerboseLog})

	for _, src := range settings.Sources {
		a.VerboseLog("loaded settings from %s", src)
	}
	return nil
}

// enterProject locates the project root from the working directory and
// applies the project's own settings file.
func (a *App) enterProject() error {
	wd, err := a.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not determine the current directory", err)
	}

	root, err := project.FindRoot(wd)
	if errors.Is(err, project.ErrNotInProject) {
		return model.NewCLIError(model.ExitGeneralError,
			"You are not inside a project folder. Please use `init` subcommand to initialize a project folder.")
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not change directory", err)
	}
	a.root = root
	a.VerboseLog("project root: %s", root)

	before := len(a.settings.Sources)
	if err := a.settings.ApplyProject(root); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not load project settings", err)
	}
	if len(a.settings.Sources) > before {
		a.VerboseLog("loaded settings from %s", a.settings.Sources[len(a.settings.Sources)-1])
	}
	return nil
}

// solution returns the name of the generated solution, failing with a hint
// when the project has not been built yet.
func (a *App) solution() (string, error) {
	name, err := project.SolutionName(a.root)
	if errors.Is(err, project.ErrNoSolution) {
		return "", model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("Could not find .sln file in `%s`\n\nNOTE: Please build the project first", project.DisplayDir(project.BuildDir)))
	}
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "Could not look for the .sln file", err)
	}
	return name, nil
}

// confirm asks a yes/no question, honouring /Y.
func (a *App) confirm(question string, defaultYes bool) (bool, error) {
	ok, err := prompt.Confirm(a.Stdin, a.Stdout, question, defaultYes, a.inv.Has(model.FlagYes))
	if err != nil {
		return false, model.WrapCLIError(model.ExitGeneralError, "Could not read the answer", err)
	}
	return ok, nil
}

// quiet reports whether /Q was given.
func (a *App) quiet() bool {
	return a.inv != nil && a.inv.Has(model.FlagQuiet)
}

// Printf writes user-facing output unless /Q was given.
func (a *App) Printf(format string, args ...any) {
	if !a.quiet() {
		fmt.Fprintf(a.Stdout, format, args...)
	}
}

// Progress prints a "momobuild: ..." progress line.
func (a *App) Progress(format string, args ...any) {
	a.Printf(progressName+": "+format+"\n", args...)
}

// Info prints an "INFO: ..." line.
func (a *App) Info(format string, args ...any) {
	a.Printf("INFO: "+format+"\n", args...)
}

// VerboseLog prints a message to stderr only when verbose mode is enabled
// in the settings. It is used for diagnostics about what momobuild is doing
// and is not affected by /Q.
func (a *App) VerboseLog(format string, args ...any) {
	if a.settings != nil && a.settings.Verbose {
		fmt.Fprintf(a.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// loggingRunner logs every command before handing it to next.
type loggingRunner struct {
	next toolchain.Runner
	log  func(format string, args ...any)
}

func (r *loggingRunner) Run(ctx context.Context, cmd toolchain.Command) error {
	if cmd.Dir != "" {
		r.log("running %s (in %s)", cmd, cmd.Dir)
	} else {
		r.log("running %s", cmd)
	}
	return r.next.Run(ctx, cmd)
}
