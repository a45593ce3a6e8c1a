package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultStoreName is the file name looked for when locating an existing
// notebook store.
const DefaultStoreName = "bower.json"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary
// directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveStorePath determines the actual path for the store file based on
// safety rules. With forceTemp, the file is re-rooted into a namespaced
// directory under the system temp dir so dev runs never touch real data.
// A path that already lives inside the temp dir (e.g. t.TempDir()) is trusted
// as is.
func ResolveStorePath(userPath string, forceTemp bool) string {
	if userPath == "" {
		userPath = DefaultStoreName
	}
	if !forceTemp {
		return userPath
	}

	clean := filepath.Clean(userPath)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if name == "." || name == string(os.PathSeparator) {
		name = DefaultStoreName
	}
	return filepath.Join(os.TempDir(), "bower-dev", name)
}

// FindStore looks upwards from startDir for an existing store file named
// DefaultStoreName and returns its path.
func FindStore(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, DefaultStoreName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found above %s", DefaultStoreName, startDir)
}
