package domain

// PackageInfo describes an installable package artifact (a wheel) as far as
// dependency checking is concerned.
type PackageInfo struct {
	// Name and Version from the core metadata.
	Name    string
	Version string

	// Requires are the Requires-Dist declarations.
	Requires []Dependency

	// TopLevel lists the importable top-level names the artifact provides.
	TopLevel []string

	// Imports are all import statements found in the bundled sources.
	Imports []PythonImport
}
