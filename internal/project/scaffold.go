package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// templateMarker separates a yasnippet header from the snippet body.
const templateMarker = "# --"

// templatePlaceholder is replaced with the project name.
const templatePlaceholder = "$1"

// defaultGitignore is written to new projects.
const defaultGitignore = `build/
bin/
redist/
TAGS
*.user
.vs/
`

// scaffoldDirs are created by Scaffold, parents before children.
var scaffoldDirs = []string{
	SrcDir,
	BinDir,
	filepath.Join(BinDir, "Release"),
	filepath.Join(BinDir, "Debug"),
	BuildDir,
	LibDir,
	IncludeDir,
}

// Created describes one entry made by Scaffold.
type Created struct {
	// Path is relative to the scaffolded directory.
	Path string

	// IsDir is true for directories.
	IsDir bool
}

// String formats the entry the way it is reported to the user.
func (c Created) String() string {
	if c.IsDir {
		return DisplayDir(c.Path)
	}
	return filepath.FromSlash(c.Path)
}

// RenderPremakeTemplate turns a yasnippet premake5 snippet into the
// contents of premake5.lua. The snippet header, up to and including the
// "# --" marker, is dropped, the body is trimmed and every "$1" becomes
// projectName. A snippet without a marker is used as a whole.
func RenderPremakeTemplate(snippet, projectName string) string {
	body := snippet
	if i := strings.Index(body, templateMarker); i >= 0 {
		body = body[i+len(templateMarker):]
	}
	body = strings.TrimSpace(body)
	return strings.ReplaceAll(body, templatePlaceholder, projectName)
}

// LoadPremakeTemplate reads the snippet at path and renders it for
// projectName.
func LoadPremakeTemplate(path, projectName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open %s for reading: %w", path, err)
	}
	return RenderPremakeTemplate(string(data), projectName), nil
}

// Scaffold creates the project layout in dir. premake is written to
// premake5.lua. Entries that already exist are left untouched, so running
// Scaffold on an existing project only fills in what is missing. The
// returned slice lists what was created, in creation order.
func Scaffold(dir, premake string) ([]Created, error) {
	var created []Created

	for _, rel := range scaffoldDirs {
		path := filepath.Join(dir, rel)
		if Exists(path) {
			continue
		}
		if err := os.Mkdir(path, 0o755); err != nil {
			return created, fmt.Errorf("could not create directory %s: %w", path, err)
		}
		created = append(created, Created{Path: rel, IsDir: true})
	}

	files := []struct {
		rel     string
		content string
	}{
		{"premake5.lua", premake},
		{MarkerFile, ""},
		{".gitignore", defaultGitignore},
		{filepath.Join(SrcDir, "main.cpp"), ""},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.rel)
		if Exists(path) {
			continue
		}
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return created, fmt.Errorf("could not open file %s for writing: %w", path, err)
		}
		created = append(created, Created{Path: f.rel})
	}

	return created, nil
}
