package cli

import (
	"fmt"
	"path/filepath"

	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
)

// runSln opens the generated solution, normally in Visual Studio.
func (a *App) runSln() error {
	name, err := a.solution()
	if err != nil {
		return err
	}

	a.Progress("Opening %s.sln...", name)
	return a.open(project.SolutionPath(a.root, name))
}

// runDir opens the output directory of cfg in the file manager. All opens
// the Debug directory.
func (a *App) runDir(cfg model.Config) error {
	dir := project.OutputDir(a.root, cfg)
	rel, err := filepath.Rel(a.root, dir)
	if err != nil {
		rel = dir
	}

	a.Progress("Opening %s...", project.DisplayDir(rel))
	return a.open(dir)
}

func (a *App) open(path string) error {
	a.VerboseLog("opening %s", path)
	if err := a.Opener.Open(path); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("Could not open %s", path), err)
	}
	return nil
}
