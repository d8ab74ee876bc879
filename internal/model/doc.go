// Package model defines the value types and error type for the momobuild CLI.
//
// This package contains pure data structures with no external dependencies.
// Config, Flag and Subcommand name the fixed literal sets accepted on the
// command line; CLIError carries the process exit code from wherever an
// error happens up to main, where it becomes the OS exit status.
package model
