package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName marks a notebook root directory.
const ConfigFileName = "notebook.yaml"

// ErrRootNotFound is returned by FindRoot when no marker exists up to the
// filesystem root.
var ErrRootNotFound = errors.New("root not found")

// FindRoot walks upwards from startDir looking for a notebook root: a directory
// holding notebook.yaml, a .notebook directory or a .git directory.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if hasFile(dir, ConfigFileName) || hasFile(dir, ".notebook") || hasFile(dir, ".git") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
