package domain

import (
	"slices"
	"sort"
)

// ImportSite locates one use of a module in the scanned sources.
type ImportSite struct {
	Module string
	File   string
	Line   int
}

// Analysis is the result of comparing declared dependencies against the
// imports actually used by the sources and the environment they run in.
type Analysis struct {
	// Environment is the fingerprint of the inspected environment.
	Environment string

	// Used lists the canonical names of declared dependencies that are
	// imported somewhere, sorted ascending.
	Used []string

	// Missing lists imports of third-party modules that no dependency
	// declares, one entry per occurrence, ordered by file then line.
	Missing []ImportSite

	// Guarded lists undeclared imports that are wrapped in an
	// ImportError guard. They are warnings, not failures.
	Guarded []ImportSite

	// Unused lists the canonical names of declared dependencies that are
	// never imported, sorted ascending.
	Unused []string
}

// OK reports whether the check passed, i.e. no unguarded missing imports.
func (a *Analysis) OK() bool {
	return len(a.Missing) == 0
}

// AnalysisInput carries everything Analyze needs.
type AnalysisInput struct {
	// Declared dependencies from the environment file or package metadata.
	Declared []Dependency

	// Imports found in the scanned sources.
	Imports []PythonImport

	// Environment classifies stdlib and builtin modules. The site-packages
	// buckets are not consulted; declarations are the source of truth for
	// third-party modules.
	Environment *ImportDump

	// LocalModules holds the top-level modules of the scanned project
	// itself, which are importable without any declaration.
	LocalModules map[string]bool
}

// Analyze classifies every import into declared, missing, guarded or
// ignorable (stdlib, builtin, relative, local) and computes the set of
// declared dependencies that are never used.
func Analyze(in AnalysisInput) *Analysis {
	declared := make(map[string]bool, len(in.Declared))
	for _, dep := range in.Declared {
		if dep.Name == "" {
			continue
		}
		declared[dep.CanonicalName()] = false
	}

	env := in.Environment
	if env == nil {
		env = NewImportDump()
	}
	stdlib := toSet(env.Stdlib)
	builtin := toSet(env.Builtin)

	a := &Analysis{Environment: Fingerprint(env)}

	for _, imp := range in.Imports {
		module := imp.TopLevelModule()
		if module == "" {
			// Relative imports resolve inside the package itself.
			continue
		}
		if stdlib[module] || builtin[module] || in.LocalModules[module] {
			continue
		}

		canonical := CanonicalName(module)
		if _, ok := declared[canonical]; ok {
			declared[canonical] = true
			continue
		}

		site := ImportSite{Module: module, File: imp.File, Line: imp.Line}
		if imp.Guarded {
			a.Guarded = append(a.Guarded, site)
		} else {
			a.Missing = append(a.Missing, site)
		}
	}

	for name, used := range declared {
		if used {
			a.Used = append(a.Used, name)
		} else {
			a.Unused = append(a.Unused, name)
		}
	}
	sort.Strings(a.Used)
	sort.Strings(a.Unused)

	byLocation := func(x, y ImportSite) int {
		if x.File != y.File {
			if x.File < y.File {
				return -1
			}
			return 1
		}
		return x.Line - y.Line
	}
	slices.SortFunc(a.Missing, byLocation)
	slices.SortFunc(a.Guarded, byLocation)

	return a
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
