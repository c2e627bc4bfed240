package domain

import "go.trai.ch/zerr"

var (
	// ErrInterpreterNotFound is returned when no python interpreter can be located.
	ErrInterpreterNotFound = zerr.New("python interpreter not found")

	// ErrInterpreterQueryFailed is returned when introspecting the interpreter fails.
	ErrInterpreterQueryFailed = zerr.New("failed to query python interpreter")

	// ErrInterpreterOutputInvalid is returned when the interpreter emits output that cannot be decoded.
	ErrInterpreterOutputInvalid = zerr.New("failed to decode python interpreter output")

	// ErrNoDependencyFile is returned when no environment file can be discovered in a project.
	ErrNoDependencyFile = zerr.New("no pyproject.toml, requirements.txt or environment.yml found")

	// ErrUnsupportedDependencyFile is returned for environment files of an unknown format.
	ErrUnsupportedDependencyFile = zerr.New("unsupported dependency file")

	// ErrDependencyFileReadFailed is returned when an environment file cannot be read.
	ErrDependencyFileReadFailed = zerr.New("failed to read dependency file")

	// ErrInvalidRequirement is returned when a requirement string cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrRequirementsCycle is returned when -r includes form a cycle.
	ErrRequirementsCycle = zerr.New("circular include in requirements file")

	// ErrPyProjectParseFailed is returned when a pyproject.toml cannot be parsed.
	ErrPyProjectParseFailed = zerr.New("failed to parse pyproject.toml")

	// ErrCondaEnvParseFailed is returned when an environment.yml cannot be parsed.
	ErrCondaEnvParseFailed = zerr.New("failed to parse environment.yml")

	// ErrSourceScanFailed is returned when scanning project sources fails.
	ErrSourceScanFailed = zerr.New("failed to scan python sources")

	// ErrPackageOpenFailed is returned when a package archive cannot be opened.
	ErrPackageOpenFailed = zerr.New("failed to open package")

	// ErrPackageMetadataMissing is returned when a package has no dist-info metadata.
	ErrPackageMetadataMissing = zerr.New("package metadata not found")

	// ErrCheckFailed is returned when a check finds undeclared imports.
	ErrCheckFailed = zerr.New("dependency check failed")
)
