// Package keyfs locates the directory holding the benchmark key files.
package keyfs

import (
	"fmt"
	"os"
	"path/filepath"
)

// KeysDirName is the directory name searched for during discovery.
const KeysDirName = "keys"

// Discover locates the keys directory by walking upward from the running
// executable, the convention used when the benchmark is run from a build tree.
func Discover() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err == nil {
		exe = resolved
	}

	dir, err := DiscoverFrom(filepath.Dir(exe))
	if err != nil {
		return "", fmt.Errorf("cannot find '%s' directory from %s", KeysDirName, exe)
	}
	return dir, nil
}

// DiscoverFrom walks upward from the given directory looking for a keys
// subdirectory and returns its path.
func DiscoverFrom(start string) (string, error) {
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, KeysDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("cannot find '%s' directory from %s", KeysDirName, start)
		}
		dir = parent
	}
}

// Validate checks that an explicitly supplied keys directory exists.
func Validate(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("keys directory %s is not accessible: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("keys directory %s is not a directory", dir)
	}
	return nil
}
