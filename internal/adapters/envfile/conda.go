package envfile

import (
	"errors"
	"os"

	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type condaEnvironment struct {
	Name         string `yaml:"name"`
	Dependencies []any  `yaml:"dependencies"`
}

// ParseCondaEnvFile extracts dependencies from a conda environment.yml:
// plain entries are conda match specs, and a nested "pip:" mapping carries
// PEP 508 requirements.
func ParseCondaEnvFile(path string) ([]domain.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(domain.ErrDependencyFileReadFailed, "file", path)
	}
	return ParseCondaEnv(data)
}

// ParseCondaEnv parses environment.yml content.
func ParseCondaEnv(data []byte) ([]domain.Dependency, error) {
	var env condaEnvironment
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, errors.Join(domain.ErrCondaEnvParseFailed, err)
	}

	var deps []domain.Dependency
	for _, entry := range env.Dependencies {
		switch v := entry.(type) {
		case string:
			deps = append(deps, ParseCondaSpec(v))
		case map[string]any:
			pip, ok := v["pip"].([]any)
			if !ok {
				continue
			}
			for _, raw := range pip {
				line, ok := raw.(string)
				if !ok {
					continue
				}
				dep, err := parseRequirementLine(line)
				if err != nil {
					return nil, err
				}
				deps = append(deps, dep)
			}
		}
	}

	return deps, nil
}
