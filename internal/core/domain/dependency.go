package domain

import (
	"regexp"
	"strings"
)

// DependencyKind distinguishes where a declared dependency points.
type DependencyKind string

const (
	// DependencyPyPI is a regular PEP 508 requirement resolved from an index.
	DependencyPyPI DependencyKind = "pypi"

	// DependencyConda is a conda match spec from an environment.yml.
	DependencyConda DependencyKind = "conda"

	// DependencyURL is a direct archive URL.
	DependencyURL DependencyKind = "url"

	// DependencyPath is a local archive or directory path.
	DependencyPath DependencyKind = "path"
)

// Dependency is a single declared dependency from an environment file.
//
// Name is empty for URL and path dependencies, where the distribution name
// cannot be known without opening the artifact.
type Dependency struct {
	Kind      DependencyKind
	Name      string
	Raw       string
	Extras    []string
	Specifier string
	Marker    string
}

// CanonicalName returns the PEP 503 normalized distribution name.
func (d Dependency) CanonicalName() string {
	return CanonicalName(d.Name)
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// CanonicalName normalizes a distribution or module name per PEP 503:
// lowercase, with runs of hyphens, underscores and dots collapsed to a
// single hyphen.
func CanonicalName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(name), "-")
}
