package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/go-vulcan/internal/filesystem"
)

// findDirUp returns the first directory from startDir upwards that contains filename.
func findDirUp(fs filesystem.FileSystem, startDir, filename string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		if fs.Exists(filepath.Join(dir, filename)) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
