package ports

import "github.com/zbowling/depwise/internal/core/domain"

// DependencyParser reads declared dependencies out of environment files.
//
//go:generate mockgen -source=envfile.go -destination=mocks/mock_envfile.go -package=mocks
type DependencyParser interface {
	// ParseFile parses the environment file at path, dispatching on its
	// file name (pyproject.toml, requirements.txt or environment.yml).
	ParseFile(path string) ([]domain.Dependency, error)

	// Infer locates the environment file of the project at dir, preferring
	// pyproject.toml over requirements.txt over environment.yml.
	Infer(dir string) (string, error)
}
