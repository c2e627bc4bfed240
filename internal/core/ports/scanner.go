package ports

// PackageScanner enumerates importable packages under site-packages roots.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type PackageScanner interface {
	// Scan returns the top-level package names found directly under the
	// given directories, in directory-scan order. Only entries carrying a
	// package marker count; plain module files are excluded. A missing or
	// unreadable directory contributes nothing and is not an error.
	Scan(dirs []string) []string
}
