package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TempFilePrefix is the prefix of the scratch files used by atomic writes.
// Watchers ignore files carrying it.
const TempFilePrefix = "notebook-tmp-"

// writeFileAtomic replaces filename with data so that readers observe either the old
// or the new value, never a torn write: data goes to a scratch file in the same
// directory which is then renamed over the target.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	_, werr := tmp.Write(data)
	if werr == nil {
		werr = tmp.Sync()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("failed to write temp file: %w", werr)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}

// isTempFile reports whether name is an in-flight atomic write.
func isTempFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), TempFilePrefix)
}

// readFileIfExists returns ok=false instead of an error when filename is missing.
func readFileIfExists(filename string) ([]byte, bool, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
