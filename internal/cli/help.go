package cli

import "fmt"

const usageText = `Usage: momobuild [flags] [config] [subcmd] {executable_args...}

Configs: 
    Debug (default)
    Release
    All

Flags: 
    /Q    - Quiet mode; do not output anything
    /Rdst - Copies vcredist files to .\redist
    /h,/? - Same as the help subcommand.
    /nb   - Do not build and run .
    /ex   - If this flag is present, the argument after the run subcommand is treated as the executable_name to run.
    /v    - Prints the version of momobuild.
    /Y    - Will answer ` + "`yes`" + ` on all confirmations.

Subcommands: 
    help                     - Displays how to use this script.
    init [project_name]      - Initializes the project folder. optional arg [project_name] can be passed.
    reset                    - Resets the project folder.
    run                      - Runs the builded program.
    srun                     - Runs the builded program as a new process.
    dir                      - Opens the directory of the builded program.
    clean                    - Cleans the left-over things from the last build.
    sln                      - Opens the .sln file of the project.
    etags                    - Generates a TAGS file from the project sources.
`

// printHelp prints the usage text. It is printed even with /Q.
func (a *App) printHelp() {
	fmt.Fprint(a.Stdout, usageText)
}
