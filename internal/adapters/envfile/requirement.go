// Package envfile parses declared dependencies out of python environment
// files: requirements.txt, pyproject.toml and conda environment.yml.
package envfile

import (
	"regexp"
	"strings"

	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
)

// requirementRe splits a PEP 508 requirement into name, optional extras and
// the remainder (version specifier or direct reference).
var requirementRe = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[([^\]]*)\])?\s*(.*)$`)

// specifierClauseRe validates a single version constraint clause.
var specifierClauseRe = regexp.MustCompile(`^(===|==|!=|<=|>=|~=|<|>)\s*\S+$`)

// ParseRequirement parses a PEP 508 requirement string into a Dependency.
// Supported: name, extras, comma-separated version specifiers, an
// environment marker after ";" and direct references ("name @ url").
func ParseRequirement(raw string) (domain.Dependency, error) {
	dep := domain.Dependency{Kind: domain.DependencyPyPI, Raw: strings.TrimSpace(raw)}

	rest := dep.Raw
	if before, after, found := strings.Cut(rest, ";"); found {
		dep.Marker = strings.TrimSpace(after)
		rest = strings.TrimSpace(before)
	}

	m := requirementRe.FindStringSubmatch(rest)
	if m == nil || m[1] == "" {
		return domain.Dependency{}, zerr.With(domain.ErrInvalidRequirement, "requirement", raw)
	}
	dep.Name = m[1]
	if m[2] != "" {
		for _, extra := range strings.Split(m[2], ",") {
			if extra = strings.TrimSpace(extra); extra != "" {
				dep.Extras = append(dep.Extras, extra)
			}
		}
	}

	tail := strings.TrimSpace(m[3])
	switch {
	case tail == "":
	case strings.HasPrefix(tail, "@"):
		// Direct reference; the URL is kept in Raw only.
	default:
		if !validSpecifier(tail) {
			return domain.Dependency{}, zerr.With(domain.ErrInvalidRequirement, "requirement", raw)
		}
		dep.Specifier = tail
	}

	return dep, nil
}

func validSpecifier(spec string) bool {
	// Specifiers may be parenthesized: "requests (>=2.0)".
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		spec = strings.TrimSpace(spec[1 : len(spec)-1])
	}
	for _, clause := range strings.Split(spec, ",") {
		if !specifierClauseRe.MatchString(strings.TrimSpace(clause)) {
			return false
		}
	}
	return true
}

// ParseCondaSpec parses a conda match spec, following the conda MatchSpec
// rules far enough to recover the package name: an optional "channel::"
// prefix followed by the name, version constraints and build options.
func ParseCondaSpec(raw string) domain.Dependency {
	spec := strings.TrimSpace(raw)

	name := spec
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		name = name[idx+2:]
	}
	if idx := strings.IndexAny(name, "=<>~["); idx >= 0 {
		name = name[:idx]
	}

	return domain.Dependency{
		Kind: domain.DependencyConda,
		Name: strings.TrimSpace(name),
		Raw:  spec,
	}
}
