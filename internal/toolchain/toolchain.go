package toolchain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shinji-kodama/momobuild/internal/config"
	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
)

// Display names of the external tools.
const (
	PremakeName = "premake5"
	MSBuildName = "MSBuild"
	EtagsName   = "etags"
)

// Toolchain invokes the external tools named in the settings.
type Toolchain struct {
	settings *config.Settings
	runner   Runner
}

// New returns a Toolchain that starts programs through runner.
func New(settings *config.Settings, runner Runner) *Toolchain {
	return &Toolchain{settings: settings, runner: runner}
}

// Premake generates the Visual Studio solution by running premake5 with
// the configured action in root.
func (t *Toolchain) Premake(ctx context.Context, root string, quiet bool) error {
	return t.build(ctx, Command{
		Name:  PremakeName,
		Path:  t.settings.Premake,
		Args:  []string{t.settings.PremakeAction},
		Dir:   root,
		Quiet: quiet,
	})
}

// MSBuildArgs returns the MSBuild arguments for building solution in the
// given target configuration.
func (t *Toolchain) MSBuildArgs(solution string, target model.Config) []string {
	args := []string{
		"-p:configuration=" + target.String(),
		filepath.Join(project.BuildDir, solution+".sln"),
	}
	return append(args, t.settings.MSBuildArgs...)
}

// MSBuild builds solution once for every target of cfg, Debug before
// Release for All. It stops at the first failing build.
func (t *Toolchain) MSBuild(ctx context.Context, root, solution string, cfg model.Config, quiet bool) error {
	for _, target := range cfg.Targets() {
		err := t.build(ctx, Command{
			Name:  MSBuildName,
			Path:  t.settings.MSBuild,
			Args:  t.MSBuildArgs(solution, target),
			Dir:   root,
			Quiet: quiet,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Etags writes the tag table for files (relative to root) into root/TAGS.
// The file names are fed to the tool on standard input ("-"), one per line,
// so large trees do not run into command line length limits.
func (t *Toolchain) Etags(ctx context.Context, root string, files []string, quiet bool) error {
	return t.build(ctx, Command{
		Name:  EtagsName,
		Path:  t.settings.Etags,
		Args:  []string{"-o", project.TagsFile, "-"},
		Dir:   root,
		Stdin: strings.NewReader(strings.Join(files, "\n") + "\n"),
		Quiet: quiet,
	})
}

// Launch runs the built program exe from binDir with args and waits for
// it. A non-zero exit becomes a silent *model.CLIError with the program's
// exit code, so momobuild exits the same way without printing anything.
func (t *Toolchain) Launch(ctx context.Context, binDir, exe string, args []string, newConsole bool) error {
	file := ExecutableFile(exe)
	err := t.runner.Run(ctx, Command{
		Name:       file,
		Path:       filepath.Join(binDir, file),
		Args:       args,
		Dir:        binDir,
		NewConsole: newConsole,
	})

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return model.ExitStatus(exitErr.Code)
	}
	return err
}

// build runs a build tool. A failing tool is reported by name and its exit
// code is kept.
func (t *Toolchain) build(ctx context.Context, cmd Command) error {
	err := t.runner.Run(ctx, cmd)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return model.WrapCLIError(model.ExitCode(exitErr.Code), fmt.Sprintf("%s failed", cmd.Name), exitErr)
	}
	return err
}

// ExecutableFile returns the file name of the program exe on the current
// platform, adding ".exe" on Windows unless it is already there.
func ExecutableFile(exe string) string {
	if runtime.GOOS == "windows" && !strings.EqualFold(filepath.Ext(exe), ".exe") {
		return exe + ".exe"
	}
	return exe
}
