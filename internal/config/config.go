// Package config loads momobuild's settings: the locations of the external
// tools it drives and a few knobs for how it drives them.
//
// Settings are layered. Compiled-in defaults come first, then the user's
// settings file, then a settings file in the project root, then environment
// variables. A later layer only overrides the fields it actually sets.
//
// Settings files may be YAML (.momobuild.yaml / .momobuild.yml) or JSON with
// comments (.momobuild.json). JSONC is handled with github.com/tidwall/jsonc,
// which strips comments and trailing commas before encoding/json parses it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names an explicit user settings file, replacing the lookup
// in the home directory.
const EnvConfigFile = "MOMOBUILD_CONFIG"

// FileNames are the settings file names searched for, in priority order.
var FileNames = []string{".momobuild.yaml", ".momobuild.yml", ".momobuild.json"}

// Settings holds everything momobuild needs to know about the machine it
// runs on. The zero value is not useful; start from Default.
type Settings struct {
	// MSBuild is the path to MSBuild.exe.
	MSBuild string `yaml:"msbuild" json:"msbuild"`

	// MSBuildArgs are appended after the solution path on every MSBuild run.
	MSBuildArgs []string `yaml:"msbuildArgs" json:"msbuildArgs"`

	// Premake is the path to premake5.exe.
	Premake string `yaml:"premake" json:"premake"`

	// PremakeAction is the premake action (the Visual Studio generator).
	PremakeAction string `yaml:"premakeAction" json:"premakeAction"`

	// VCRedistDir is the directory holding vc_redist.<arch>.exe.
	VCRedistDir string `yaml:"vcredistDir" json:"vcredistDir"`

	// VCRedistArchs lists the redistributable architectures copied by /Rdst.
	VCRedistArchs []string `yaml:"vcredistArchs" json:"vcredistArchs"`

	// TemplatePath is the premake5.lua snippet rendered by "init <name>".
	TemplatePath string `yaml:"templatePath" json:"templatePath"`

	// Etags is the tagging tool run by the etags subcommand.
	Etags string `yaml:"etags" json:"etags"`

	// TagDirs are the project directories scanned for sources to tag.
	TagDirs []string `yaml:"tagDirs" json:"tagDirs"`

	// SourceExtensions are the file extensions handed to the tagging tool.
	SourceExtensions []string `yaml:"sourceExtensions" json:"sourceExtensions"`

	// Verbose enables [verbose] diagnostics on stderr.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Sources lists the settings files that were applied, in order.
	Sources []string `yaml:"-" json:"-"`
}

// layer is the on-disk shape of a settings file. Pointer and nil-slice
// fields distinguish "not set" from "set to the zero value".
type layer struct {
	MSBuild          *string  `yaml:"msbuild" json:"msbuild"`
	MSBuildArgs      []string `yaml:"msbuildArgs" json:"msbuildArgs"`
	Premake          *string  `yaml:"premake" json:"premake"`
	PremakeAction    *string  `yaml:"premakeAction" json:"premakeAction"`
	VCRedistDir      *string  `yaml:"vcredistDir" json:"vcredistDir"`
	VCRedistArchs    []string `yaml:"vcredistArchs" json:"vcredistArchs"`
	TemplatePath     *string  `yaml:"templatePath" json:"templatePath"`
	Etags            *string  `yaml:"etags" json:"etags"`
	TagDirs          []string `yaml:"tagDirs" json:"tagDirs"`
	SourceExtensions []string `yaml:"sourceExtensions" json:"sourceExtensions"`
	Verbose          *bool    `yaml:"verbose" json:"verbose"`
}

// Default returns the built-in settings. home is the user's home directory
// and anchors the premake template path; it may be empty.
func Default(home string) *Settings {
	return &Settings{
		MSBuild:       `D:\bin\Microsoft Visual Studio\Community\MSBuild\Current\Bin\MSBuild.exe`,
		MSBuildArgs:   []string{"-v:m", "-m"},
		Premake:       `D:\bin\premake 5.0 beta2\premake5.exe`,
		PremakeAction: "vs2022",
		VCRedistDir:   `D:\bin\Microsoft Visual Studio\Community\VC\Redist\MSVC\14.36.32532`,
		VCRedistArchs: []string{"x64", "x86"},
		TemplatePath:  filepath.Join(home, ".emacs.d", "snippets", "lua-mode", "premake5"),
		Etags:         "etags",
		TagDirs:       []string{"src", "include"},
		SourceExtensions: []string{
			".c", ".cc", ".cpp", ".cxx",
			".h", ".hh", ".hpp", ".hxx", ".inl",
		},
	}
}

// Load builds the user-level settings: defaults, then the file named by
// MOMOBUILD_CONFIG or the first settings file found in home, then the
// environment. A missing settings file is not an error.
func Load(home string) (*Settings, error) {
	s := Default(home)

	path := os.Getenv(EnvConfigFile)
	if path == "" && home != "" {
		path = findFile(home)
	}
	if path != "" {
		if err := s.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyProject overlays the settings file found in the project root, if
// any, and re-applies the environment so it keeps the last word.
func (s *Settings) ApplyProject(root string) error {
	path := findFile(root)
	if path == "" {
		return nil
	}
	if err := s.applyFile(path); err != nil {
		return err
	}
	return s.applyEnv()
}

// findFile returns the first existing settings file in dir, or "".
func findFile(dir string) string {
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadLayer parses a single settings file.
func loadLayer(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var l layer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), &l); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	}
	return &l, nil
}

func (s *Settings) applyFile(path string) error {
	l, err := loadLayer(path)
	if err != nil {
		return err
	}
	s.apply(l)
	s.Sources = append(s.Sources, path)
	return nil
}

func (s *Settings) apply(l *layer) {
	setString(&s.MSBuild, l.MSBuild)
	setString(&s.Premake, l.Premake)
	setString(&s.PremakeAction, l.PremakeAction)
	setString(&s.VCRedistDir, l.VCRedistDir)
	setString(&s.TemplatePath, l.TemplatePath)
	setString(&s.Etags, l.Etags)
	setSlice(&s.MSBuildArgs, l.MSBuildArgs)
	setSlice(&s.VCRedistArchs, l.VCRedistArchs)
	setSlice(&s.TagDirs, l.TagDirs)
	setSlice(&s.SourceExtensions, l.SourceExtensions)
	if l.Verbose != nil {
		s.Verbose = *l.Verbose
	}
}

// envStrings maps environment variables to the string settings they override.
func (s *Settings) envStrings() map[string]*string {
	return map[string]*string{
		"MOMOBUILD_MSBUILD":      &s.MSBuild,
		"MOMOBUILD_PREMAKE":      &s.Premake,
		"MOMOBUILD_VCREDIST_DIR": &s.VCRedistDir,
		"MOMOBUILD_TEMPLATE":     &s.TemplatePath,
		"MOMOBUILD_ETAGS":        &s.Etags,
	}
}

func (s *Settings) applyEnv() error {
	for name, field := range s.envStrings() {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}

	if v := os.Getenv("MOMOBUILD_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MOMOBUILD_VERBOSE value %q: %w", v, err)
		}
		s.Verbose = b
	}
	return nil
}

// Validate checks that the settings can drive a build.
func (s *Settings) Validate() error {
	var errs []error
	if s.MSBuild == "" {
		errs = append(errs, errors.New("msbuild path must not be empty"))
	}
	if s.Premake == "" {
		errs = append(errs, errors.New("premake path must not be empty"))
	}
	if s.PremakeAction == "" {
		errs = append(errs, errors.New("premakeAction must not be empty"))
	}
	for _, ext := range s.SourceExtensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("source extension %q must start with '.'", ext))
		}
	}
	return errors.Join(errs...)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setSlice(dst *[]string, src []string) {
	if src != nil {
		*dst = append([]string(nil), src...)
	}
}
