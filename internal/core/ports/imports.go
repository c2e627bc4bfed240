package ports

import (
	"context"

	"github.com/zbowling/depwise/internal/core/domain"
)

// ImportScanner extracts import statements from python sources.
//
//go:generate mockgen -source=imports.go -destination=mocks/mock_imports.go -package=mocks
type ImportScanner interface {
	// ScanProject walks all python sources under root and returns every
	// import found, ordered by file path then line.
	ScanProject(ctx context.Context, root string) ([]domain.PythonImport, error)

	// ScanSource extracts imports from a single source, using name for
	// location reporting.
	ScanSource(name string, src []byte) []domain.PythonImport

	// TopLevelModules returns the project's own importable top-level
	// names: packages and plain modules directly under root.
	TopLevelModules(root string) ([]string, error)
}
