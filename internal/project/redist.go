package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// RedistPrefix is the file name prefix of the Visual C++ redistributable
// installers; the architecture and ".exe" follow it.
const RedistPrefix = "vc_redist."

// RedistResult reports what CopyRedist did.
type RedistResult struct {
	// CreatedDir is true when <root>/redist did not exist before.
	CreatedDir bool

	// Copied lists installer file names that were copied.
	Copied []string

	// UpToDate lists installer file names whose copy was already current.
	UpToDate []string
}

// RedistName returns the installer file name for arch, e.g. vc_redist.x64.exe.
func RedistName(arch string) string {
	return RedistPrefix + arch + ".exe"
}

// CopyRedist copies the redistributable installer for every arch from
// srcDir into <root>/redist. A destination that is at least as new as its
// source is left alone.
func CopyRedist(root, srcDir string, archs []string) (*RedistResult, error) {
	result := &RedistResult{}

	dstDir := filepath.Join(root, RedistDir)
	if !Exists(dstDir) {
		if err := os.MkdirAll(dstDir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create %s: %w", dstDir, err)
		}
		result.CreatedDir = true
	}

	for _, arch := range archs {
		name := RedistName(arch)
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, name)

		srcInfo, err := os.Stat(src)
		if err != nil {
			return result, fmt.Errorf("could not copy %s: %w", src, err)
		}
		if upToDate(srcInfo, dst) {
			result.UpToDate = append(result.UpToDate, name)
			continue
		}

		// PreserveTimes keeps the source mtime so the next run sees the
		// copy as current.
		if err := copy.Copy(src, dst, copy.Options{PreserveTimes: true}); err != nil {
			return result, fmt.Errorf("could not copy %s: %w", src, err)
		}
		result.Copied = append(result.Copied, name)
	}
	return result, nil
}

// upToDate reports whether dst exists and is not older than the source.
func upToDate(srcInfo os.FileInfo, dst string) bool {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return false
	}
	return !dstInfo.ModTime().Before(srcInfo.ModTime())
}
