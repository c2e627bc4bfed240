// Package cpython introspects a python environment by shelling out to the
// interpreter itself, so the reported registries are exactly what the
// environment's own python would see.
package cpython

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
)

// PythonEnv overrides the interpreter binary used for introspection.
const PythonEnv = "DEPWISE_PYTHON"

// DefaultPython is the interpreter used when no override is set.
const DefaultPython = "python3"

const (
	stdlibScript   = "import sys, json; print(json.dumps(sorted(sys.stdlib_module_names)))"
	builtinScript  = "import sys, json; print(json.dumps(sorted(sys.builtin_module_names)))"
	siteScript     = "import site, json; print(json.dumps(site.getsitepackages()))"
	userSiteScript = "import site, json; print(json.dumps([site.getusersitepackages()]))"
)

// Interpreter implements ports.Interpreter against a real python binary.
type Interpreter struct {
	python string
}

// New locates the python interpreter and returns an Interpreter bound to it.
// The DEPWISE_PYTHON environment variable overrides the binary name.
func New() (*Interpreter, error) {
	python := os.Getenv(PythonEnv)
	if python == "" {
		python = DefaultPython
	}

	path, err := exec.LookPath(python)
	if err != nil {
		return nil, zerr.With(domain.ErrInterpreterNotFound, "python", python)
	}

	return &Interpreter{python: path}, nil
}

// Python returns the resolved interpreter path.
func (i *Interpreter) Python() string {
	return i.python
}

// StdlibModuleNames returns sorted sys.stdlib_module_names.
func (i *Interpreter) StdlibModuleNames(ctx context.Context) ([]string, error) {
	return i.query(ctx, stdlibScript)
}

// BuiltinModuleNames returns sorted sys.builtin_module_names.
func (i *Interpreter) BuiltinModuleNames(ctx context.Context) ([]string, error) {
	return i.query(ctx, builtinScript)
}

// SitePackageDirs returns site.getsitepackages().
func (i *Interpreter) SitePackageDirs(ctx context.Context) ([]string, error) {
	return i.query(ctx, siteScript)
}

// UserSitePackageDirs returns site.getusersitepackages() as a single-element
// list, matching the shape of the global variant.
func (i *Interpreter) UserSitePackageDirs(ctx context.Context) ([]string, error) {
	return i.query(ctx, userSiteScript)
}

func (i *Interpreter) query(ctx context.Context, script string) ([]string, error) {
	cmd := exec.CommandContext(ctx, i.python, "-c", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Join(
			zerr.With(domain.ErrInterpreterQueryFailed, "stderr", strings.TrimSpace(stderr.String())),
			err,
		)
	}

	var names []string
	if err := json.Unmarshal(stdout.Bytes(), &names); err != nil {
		return nil, errors.Join(domain.ErrInterpreterOutputInvalid, err)
	}
	return names, nil
}
