package ports

import "github.com/zbowling/depwise/internal/core/domain"

// PackageInspector opens installable package artifacts.
//
//go:generate mockgen -source=package_inspector.go -destination=mocks/mock_package_inspector.go -package=mocks
type PackageInspector interface {
	// Inspect reads the metadata and bundled sources of the wheel at path.
	Inspect(path string) (*domain.PackageInfo, error)
}
