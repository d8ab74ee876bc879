package cli

import (
	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
)

// runRedist copies the Visual C++ redistributables into <root>/redist. The
// project must have been built at least once.
func (a *App) runRedist() error {
	if _, err := a.solution(); err != nil {
		return err
	}

	result, err := project.CopyRedist(a.root, a.settings.VCRedistDir, a.settings.VCRedistArchs)
	if result != nil {
		if result.CreatedDir {
			a.Info("Created %s...", project.DisplayDir(project.RedistDir))
		}
		for _, name := range result.Copied {
			a.Info("Copied %s...", name)
		}
		for _, name := range result.UpToDate {
			a.Info("%s is up to date...", name)
		}
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not copy the redistributables", err)
	}
	return nil
}
