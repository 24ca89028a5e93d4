// Package paths resolves where generated cue files are written.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minicodemonkey/bells/internal/log"
)

// executable returns the path of the running binary.
var executable = os.Executable

// SetExecutable overrides the executable path used by OutputDir.
// Intended for testing. Returns a restore function.
func SetExecutable(path string) func() {
	old := executable
	executable = func() (string, error) { return path, nil }
	return func() { executable = old }
}

// OutputDir returns the directory containing the running executable,
// with symlinks resolved.
func OutputDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		log.Warnf("resolving symlinks for %s: %v", exe, err)
	} else {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// CueFile returns meditation_<name>.wav
func CueFile(name string) string {
	return "meditation_" + name + ".wav"
}

// CuePath returns <dir>/meditation_<name>.wav
func CuePath(dir, name string) string {
	return filepath.Join(dir, CueFile(name))
}
