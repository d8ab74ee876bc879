package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
	"github.com/shinji-kodama/momobuild/internal/toolchain"
)

// rule separates momobuild's output from the output of the program it runs.
var rule = strings.Repeat("-", 50)

// runBuild generates the solution with premake5 and builds it with MSBuild.
func (a *App) runBuild(ctx context.Context, cfg model.Config) error {
	if err := a.settings.Validate(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Invalid settings", err)
	}

	a.Printf("\n")
	a.Progress("Running Premake5...")
	if err := a.tools.Premake(ctx, a.root, a.quiet()); err != nil {
		return err
	}
	if !project.Exists(filepath.Join(a.root, project.BuildDir)) {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("premake5 did not create %s", project.DisplayDir(project.BuildDir)))
	}

	name, err := a.solution()
	if err != nil {
		return err
	}

	a.Printf("\n")
	a.Progress("Running MSBuild [%s]...", cfg)
	return a.tools.MSBuild(ctx, a.root, name, cfg, a.quiet())
}

// runProgram starts the built program for run and srun and mirrors its
// exit code. /ex picks the executable; otherwise it is named after the
// solution.
func (a *App) runProgram(ctx context.Context, cfg model.Config) error {
	exe := a.inv.ExecutableName
	if exe == "" {
		name, err := a.solution()
		if err != nil {
			return err
		}
		exe = name
	}

	newConsole := a.inv.Is(model.SubcommandSrun)
	target := cfg.RunTarget()

	a.Printf("\n")
	if newConsole {
		a.Progress("Running %s[%s] as a new process...", toolchain.ExecutableFile(exe), target)
	} else {
		a.Progress("Running %s[%s]...", toolchain.ExecutableFile(exe), target)
	}
	a.Printf("%s\n", rule)

	return a.tools.Launch(ctx, project.OutputDir(a.root, cfg), exe, a.inv.ExecutableArgs, newConsole)
}
