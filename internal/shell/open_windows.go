//go:build windows

package shell

import "golang.org/x/sys/windows"

// open calls ShellExecute with the "open" verb, which is what Explorer
// does on a double click.
func open(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL)
}
