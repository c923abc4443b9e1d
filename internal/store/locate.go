package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locate walks up from start toward the filesystem root looking for a
// directory that contains a readable regular file named filename. It
// returns the first such directory. The walk reads the filesystem but
// never changes the working directory, so failure leaves no trace.
func Locate(start, filename string) (dir string, found bool, err error) {
	if filename == "" {
		return "", false, nil
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolving path: %w", err)
	}

	for {
		if hasStoreFile(abs, filename) {
			return abs, true, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false, nil
		}
		abs = parent
	}
}

// hasStoreFile checks whether dir contains a readable regular file named
// filename. A directory of that name, or a file the process cannot read,
// does not count as a store and the search continues past it.
func hasStoreFile(dir, filename string) bool {
	path := filepath.Join(dir, filename)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
