package cli

import (
	"fmt"

	"github.com/shinji-kodama/momobuild/internal/model"
	"github.com/shinji-kodama/momobuild/internal/project"
)

// runInit scaffolds a project in the current directory. With a project
// name, premake5.lua is rendered from the configured template; without
// one it starts empty.
func (a *App) runInit() error {
	var premake string
	if name := a.inv.ProjectName; name != "" {
		var err error
		premake, err = project.LoadPremakeTemplate(a.settings.TemplatePath, name)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("Could not open %s for reading...", a.settings.TemplatePath), err)
		}
	}

	ok, err := a.confirm("This will create a project structure at the current dir, proceed?", true)
	if err != nil || !ok {
		return err
	}

	wd, err := a.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not determine the current directory", err)
	}

	a.Progress("Initializing Project...")
	created, err := project.Scaffold(wd, premake)
	for _, c := range created {
		a.Info("Created %s...", c)
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Could not initialize the project", err)
	}
	return nil
}
