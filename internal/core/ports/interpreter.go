// Package ports defines the core interfaces for the application.
package ports

import "context"

// Interpreter exposes the module registries and search paths of a python
// environment. The production adapter shells out to the interpreter itself;
// tests inject fixed fixtures.
//
//go:generate mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type Interpreter interface {
	// StdlibModuleNames returns the authoritative standard-library module
	// names, sorted ascending.
	StdlibModuleNames(ctx context.Context) ([]string, error)

	// BuiltinModuleNames returns the modules compiled into the interpreter
	// binary, sorted ascending.
	BuiltinModuleNames(ctx context.Context) ([]string, error)

	// SitePackageDirs returns the global site-packages directories.
	SitePackageDirs(ctx context.Context) ([]string, error)

	// UserSitePackageDirs returns the user-specific site-packages
	// directories.
	UserSitePackageDirs(ctx context.Context) ([]string, error)
}
