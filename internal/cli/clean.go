package cli

import (
	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
)

// runClean removes the intermediate build directory after confirmation.
func (a *App) runClean() error {
	a.Progress("Cleaning project...")
	ok, err := a.confirm("This will clean the previous build, continue?", true)
	if err != nil || !ok {
		return err
	}

	removed, err := project.Clean(a.root)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not clean the project", err)
	}
	if removed {
		a.Info("Removed %s...", project.DisplayDir(project.BuildDir))
	} else {
		a.Info("Nothing to remove...")
	}
	return nil
}

// runReset returns the project to its freshly initialized state. Unlike
// clean, the default answer is no.
func (a *App) runReset() error {
	a.Progress("Resetting project...")
	ok, err := a.confirm("This will reset the project folder, continue?", false)
	if err != nil || !ok {
		return err
	}

	removed, err := project.Reset(a.root)
	for _, rel := range removed {
		if rel == project.TagsFile {
			a.Info("Removed %s...", rel)
		} else {
			a.Info("Removed %s...", project.DisplayDir(rel))
		}
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not reset the project", err)
	}
	if len(removed) == 0 {
		a.Info("Nothing to remove...")
	}
	return nil
}
