package envfile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zbowling/depwise/internal/adapters/envfile"
	"github.com/zbowling/depwise/internal/core/domain"
)

func TestParser_ParseFileDispatch(t *testing.T) {
	dir := t.TempDir()
	parser := envfile.NewParser()

	reqs := writeFile(t, dir, "requirements.txt", "requests\n")
	deps, err := parser.ParseFile(reqs)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, domain.DependencyPyPI, deps[0].Kind)

	devReqs := writeFile(t, dir, "requirements-dev.txt", "pytest\n")
	deps, err = parser.ParseFile(devReqs)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "pytest", deps[0].Name)

	pyproject := writeFile(t, dir, "pyproject.toml", "[project]\ndependencies = [\"flask\"]\n")
	deps, err = parser.ParseFile(pyproject)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "flask", deps[0].Name)

	conda := writeFile(t, dir, "environment.yml", "dependencies:\n  - numpy\n")
	deps, err = parser.ParseFile(conda)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, domain.DependencyConda, deps[0].Kind)

	_, err = parser.ParseFile(filepath.Join(dir, "setup.cfg"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedDependencyFile)
}

func TestParser_InferPrefersPyProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project]\nname = \"x\"\n")
	writeFile(t, dir, "requirements.txt", "requests\n")

	path, err := envfile.NewParser().Infer(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pyproject.toml"), path)
}

func TestParser_InferSkipsPoetryOnlyPyProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[tool.poetry]\nname = \"x\"\n")
	writeFile(t, dir, "requirements.txt", "requests\n")

	path, err := envfile.NewParser().Infer(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "requirements.txt"), path)
}

func TestParser_InferFallsBackToConda(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "environment.yml", "dependencies:\n  - numpy\n")

	path, err := envfile.NewParser().Infer(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "environment.yml"), path)
}

func TestParser_InferNothingFound(t *testing.T) {
	_, err := envfile.NewParser().Infer(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNoDependencyFile)
}
