package pysrc

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// directories never containing first-party sources.
var skipDirs = map[string]struct{}{
	"__pycache__":   {},
	"venv":          {},
	".venv":         {},
	"env":           {},
	"site-packages": {},
	"node_modules":  {},
	"build":         {},
	"dist":          {},
}

// ScanProject walks every python source under root and returns the
// imports found, ordered by file path then line. Files are scanned
// concurrently.
func (s *Scanner) ScanProject(ctx context.Context, root string) ([]domain.PythonImport, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if _, skip := skipDirs[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), domain.PythonSourceSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(zerr.With(domain.ErrSourceScanFailed, "root", root), err)
	}
	sort.Strings(files)

	results := make([][]domain.PythonImport, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Join(zerr.With(domain.ErrSourceScanFailed, "file", path), err)
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			results[i] = s.ScanSource(rel, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var imports []domain.PythonImport
	for _, r := range results {
		imports = append(imports, r...)
	}
	return imports, nil
}

// TopLevelModules returns the project's own importable top-level names:
// marker-bearing packages and plain modules directly under root, plus
// packages under a src/ layout directory.
func (s *Scanner) TopLevelModules(root string) ([]string, error) {
	names, err := topLevelIn(root)
	if err != nil {
		return nil, err
	}

	if src, err := topLevelIn(filepath.Join(root, "src")); err == nil {
		names = append(names, src...)
	}

	sort.Strings(names)
	return dedup(names), nil
}

func topLevelIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(domain.ErrSourceScanFailed, "dir", dir)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			if _, skip := skipDirs[name]; skip {
				continue
			}
			marker := filepath.Join(dir, name, domain.PackageMarkerName)
			if _, err := os.Stat(marker); err == nil {
				names = append(names, name)
			}
			continue
		}
		if strings.HasSuffix(name, domain.PythonSourceSuffix) {
			names = append(names, strings.TrimSuffix(name, domain.PythonSourceSuffix))
		}
	}
	return names, nil
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, name := range sorted {
		if i == 0 || sorted[i-1] != name {
			out = append(out, name)
		}
	}
	return out
}
