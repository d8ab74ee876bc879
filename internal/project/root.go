package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shinji-kodama/momobuild/internal/model"
)

// MarkerFile marks the root directory of a momobuild project.
const MarkerFile = ".topdir"

// Directory names inside a project root.
const (
	SrcDir     = "src"
	IncludeDir = "include"
	LibDir     = "lib"
	BinDir     = "bin"
	BuildDir   = "build"
	RedistDir  = "redist"
)

// TagsFile is the tag table written by the etags subcommand.
const TagsFile = "TAGS"

// ErrNotInProject is returned by FindRoot when no ancestor directory
// contains MarkerFile.
var ErrNotInProject = errors.New("not inside a project folder")

// ErrNoSolution is returned by SolutionName when build/ holds no .sln file.
var ErrNoSolution = errors.New("no .sln file in build directory")

// FindRoot walks from start up through its parents and returns the first
// directory that contains MarkerFile.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, MarkerFile)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInProject
		}
		dir = parent
	}
}

// SolutionName returns the name, without extension, of the Visual Studio
// solution premake generated in <root>/build. When several exist the
// lexically first one wins.
//
// The directory is listed rather than globbed so that characters such as
// '[' in the project path are not taken as pattern syntax.
func SolutionName(root string) (string, error) {
	entries, err := os.ReadDir(filepath.Join(root, BuildDir))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSolution
	}
	if err != nil {
		return "", err
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), ".sln") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	if len(names) == 0 {
		return "", ErrNoSolution
	}
	sort.Strings(names)
	return names[0], nil
}

// SolutionPath returns <root>/build/<name>.sln.
func SolutionPath(root, name string) string {
	return filepath.Join(root, BuildDir, name+".sln")
}

// OutputDir returns the directory holding the binaries built for cfg.
func OutputDir(root string, cfg model.Config) string {
	return filepath.Join(root, BinDir, cfg.RunTarget().String())
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DisplayDir formats a root-relative directory the way momobuild prints
// it, with a trailing separator.
func DisplayDir(rel string) string {
	return filepath.FromSlash(rel) + string(filepath.Separator)
}
