package cli

import (
	"context"

	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
)

// runEtags regenerates <root>/TAGS from the project's C/C++ sources.
func (a *App) runEtags(ctx context.Context) error {
	files, err := project.CollectSources(a.root, a.settings.TagDirs, a.settings.SourceExtensions)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not collect source files", err)
	}
	if len(files) == 0 {
		a.Info("No source files to tag...")
		return nil
	}

	a.Progress("Running %s on %d files...", a.settings.Etags, len(files))
	if err := a.tools.Etags(ctx, a.root, files, a.quiet()); err != nil {
		return err
	}
	a.Info("Wrote %s...", project.TagsFile)
	return nil
}
