// Package shell hands files and directories to the operating system's
// default handler: Visual Studio for a .sln, the file manager for a
// directory.
package shell

import "fmt"

// Opener opens a path with whatever program the desktop associates with it.
type Opener interface {
	Open(path string) error
}

// SystemOpener opens paths with the platform's shell.
type SystemOpener struct{}

// Open asks the shell to open path. It returns as soon as the request is
// handed off; it does not wait for the opened program.
func (SystemOpener) Open(path string) error {
	if err := open(path); err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	return nil
}
