package envfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zbowling/depwise/internal/adapters/envfile"
	"github.com/zbowling/depwise/internal/core/domain"
)

func TestParsePyProject_Dependencies(t *testing.T) {
	content := []byte(`
[project]
name = "example"
dependencies = [
    "requests>=2.28",
    "click",
]
`)

	deps, err := envfile.ParsePyProject(content)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "requests", deps[0].Name)
	assert.Equal(t, ">=2.28", deps[0].Specifier)
	assert.Equal(t, "click", deps[1].Name)
}

func TestParsePyProject_OptionalDependencies(t *testing.T) {
	content := []byte(`
[project]
name = "example"
dependencies = ["requests"]

[project.optional-dependencies]
test = ["pytest>=7", "pytest-cov"]
docs = ["sphinx"]
`)

	deps, err := envfile.ParsePyProject(content)
	require.NoError(t, err)

	names := make([]string, len(deps))
	for i, dep := range deps {
		names[i] = dep.Name
	}
	// Required first, then optional groups in name order.
	assert.Equal(t, []string{"requests", "sphinx", "pytest", "pytest-cov"}, names)
}

func TestParsePyProject_NoProjectTable(t *testing.T) {
	content := []byte(`
[tool.poetry]
name = "legacy"
`)

	deps, err := envfile.ParsePyProject(content)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestParsePyProject_InvalidTOML(t *testing.T) {
	_, err := envfile.ParsePyProject([]byte("[project\nbroken"))
	assert.ErrorIs(t, err, domain.ErrPyProjectParseFailed)
}

func TestParsePyProject_InvalidRequirement(t *testing.T) {
	content := []byte(`
[project]
dependencies = ["==not-a-name"]
`)
	_, err := envfile.ParsePyProject(content)
	assert.ErrorIs(t, err, domain.ErrInvalidRequirement)
}
