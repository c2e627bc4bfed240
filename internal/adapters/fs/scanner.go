// Package fs provides filesystem scanning for installed packages.
package fs

import (
	"os"
	"path/filepath"

	"github.com/zbowling/depwise/internal/core/domain"
)

// Scanner implements ports.PackageScanner.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan enumerates the top-level packages directly under each directory, in
// directory-scan order. A directory that does not exist or cannot be read
// contributes nothing; the remaining directories are still scanned.
//
// Only real packages count: a directory entry qualifies when it contains the
// __init__.py marker. Plain .py module files and metadata directories such as
// *.dist-info never do.
func (s *Scanner) Scan(dirs []string) []string {
	var names []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if isPackage(filepath.Join(dir, entry.Name())) {
				names = append(names, entry.Name())
			}
		}
	}
	return names
}

// isPackage reports whether dir carries the package marker.
func isPackage(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.PackageMarkerName))
	return err == nil && info.Mode().IsRegular()
}
