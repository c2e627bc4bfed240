package envfile

import (
	"errors"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
)

type pyProject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

// ParsePyProjectFile extracts [project].dependencies and every
// [project.optional-dependencies] group from a pyproject.toml.
func ParsePyProjectFile(path string) ([]domain.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.ErrDependencyFileReadFailed, "file", path)
	}
	return ParsePyProject(data)
}

// ParsePyProject parses pyproject.toml content.
func ParsePyProject(data []byte) ([]domain.Dependency, error) {
	var project pyProject
	if err := toml.Unmarshal(data, &project); err != nil {
		return nil, errors.Join(domain.ErrPyProjectParseFailed, err)
	}

	var deps []domain.Dependency
	for _, raw := range project.Project.Dependencies {
		dep, err := ParseRequirement(raw)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}

	// Optional groups in stable name order so output is deterministic.
	groups := make([]string, 0, len(project.Project.OptionalDependencies))
	for group := range project.Project.OptionalDependencies {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		for _, raw := range project.Project.OptionalDependencies[group] {
			dep, err := ParseRequirement(raw)
			if err != nil {
				return nil, err
			}
			deps = append(deps, dep)
		}
	}

	return deps, nil
}

// hasProjectTable reports whether the pyproject.toml at path contains a
// [project] table. Poetry-only files do not and cannot be inferred from.
func hasProjectTable(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return false
	}
	_, ok := doc["project"].(map[string]any)
	return ok
}
