package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// resetRemoves lists the generated entries deleted by Reset.
var resetRemoves = []string{BuildDir, BinDir, RedistDir, TagsFile}

// resetRecreates lists the directories Reset puts back afterwards.
var resetRecreates = []string{
	BuildDir,
	filepath.Join(BinDir, "Debug"),
	filepath.Join(BinDir, "Release"),
}

// remove deletes path and everything below it. It reports whether there
// was anything to delete.
func remove(path string) (bool, error) {
	_, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("could not remove %s: %w", path, err)
	}
	return true, nil
}

// Clean removes the premake/MSBuild intermediate directory <root>/build.
// It reports whether the directory existed.
func Clean(root string) (bool, error) {
	return remove(filepath.Join(root, BuildDir))
}

// Reset returns the project to its freshly initialized state: generated
// build files, binaries, copied redistributables and the tag table are
// deleted and the empty output directories are recreated. Sources,
// headers, libraries, premake5.lua and the marker file are kept. The
// returned slice lists the root-relative entries that were removed.
func Reset(root string) ([]string, error) {
	var removed []string
	for _, rel := range resetRemoves {
		ok, err := remove(filepath.Join(root, rel))
		if err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, rel)
		}
	}

	for _, rel := range resetRecreates {
		if err := os.MkdirAll(filepath.Join(root, rel), 0o755); err != nil {
			return removed, fmt.Errorf("could not create directory %s: %w", rel, err)
		}
	}
	return removed, nil
}
