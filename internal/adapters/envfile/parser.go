package envfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.DependencyParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses the environment file at path, dispatching on its name.
func (p *Parser) ParseFile(path string) ([]domain.Dependency, error) {
	base := filepath.Base(path)
	switch {
	case base == domain.PyProjectFileName:
		return ParsePyProjectFile(path)
	case base == domain.CondaEnvFileName || base == "environment.yaml":
		return ParseCondaEnvFile(path)
	case strings.HasPrefix(base, "requirements") && strings.HasSuffix(base, ".txt"):
		return ParseRequirementsFile(path)
	default:
		return nil, zerr.With(domain.ErrUnsupportedDependencyFile, "file", path)
	}
}

// Infer locates the environment file for the project at dir: a
// pyproject.toml with a [project] table wins, then requirements.txt, then
// environment.yml.
func (p *Parser) Infer(dir string) (string, error) {
	pyproject := filepath.Join(dir, domain.PyProjectFileName)
	if exists(pyproject) && hasProjectTable(pyproject) {
		return pyproject, nil
	}

	requirements := filepath.Join(dir, domain.RequirementsFileName)
	if exists(requirements) {
		return requirements, nil
	}

	conda := filepath.Join(dir, domain.CondaEnvFileName)
	if exists(conda) {
		return conda, nil
	}

	return "", zerr.With(domain.ErrNoDependencyFile, "dir", dir)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
