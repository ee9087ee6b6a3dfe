package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// DevDirName is the directory under os.TempDir() that sandboxed runs use.
const DevDirName = "notebook-dev"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// Both build their binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolvePath decides where a store actually lives.
// With forceTemp the path is re-rooted under DevDirName, unless it already
// points inside the system temp directory.
func ResolvePath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	clean := filepath.Clean(userPath)
	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && filepath.IsAbs(clean) && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if userPath == "" || name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), DevDirName, name)
}
