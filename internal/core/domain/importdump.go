// Package domain contains the core types for depwise.
package domain

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Category identifies the provenance bucket a module name belongs to.
type Category string

const (
	// CategoryStdlib covers modules shipped with the interpreter distribution.
	CategoryStdlib Category = "stdlib"

	// CategoryBuiltin covers modules compiled into the interpreter binary.
	CategoryBuiltin Category = "builtin"

	// CategorySitePackages covers packages installed into the global
	// site-packages directories.
	CategorySitePackages Category = "site-packages"

	// CategoryUserSitePackages covers packages installed into the
	// user-specific site-packages directory.
	CategoryUserSitePackages Category = "user-site-packages"
)

// Categories returns all buckets in serialization order.
func Categories() []Category {
	return []Category{
		CategoryStdlib,
		CategoryBuiltin,
		CategorySitePackages,
		CategoryUserSitePackages,
	}
}

// ImportDump is the structured report of everything importable in an
// environment, partitioned by provenance.
//
// Stdlib and Builtin come from the interpreter's authoritative registries and
// are sorted ascending. The site-packages buckets preserve directory-scan
// order and may contain duplicates when multiple search paths expose the same
// package; that duplication is preserved, not collapsed.
//
// JSON field order matches the fixed category order.
type ImportDump struct {
	Stdlib           []string `json:"stdlib"`
	Builtin          []string `json:"builtin"`
	SitePackages     []string `json:"site-packages"`
	UserSitePackages []string `json:"user-site-packages"`
}

// NewImportDump returns an ImportDump with all four buckets present and empty.
func NewImportDump() *ImportDump {
	return &ImportDump{
		Stdlib:           []string{},
		Builtin:          []string{},
		SitePackages:     []string{},
		UserSitePackages: []string{},
	}
}

// Append adds names to the given bucket, preserving insertion order.
func (d *ImportDump) Append(cat Category, names ...string) {
	switch cat {
	case CategoryStdlib:
		d.Stdlib = append(d.Stdlib, names...)
	case CategoryBuiltin:
		d.Builtin = append(d.Builtin, names...)
	case CategorySitePackages:
		d.SitePackages = append(d.SitePackages, names...)
	case CategoryUserSitePackages:
		d.UserSitePackages = append(d.UserSitePackages, names...)
	}
}

// Bucket returns the contents of the given bucket.
func (d *ImportDump) Bucket(cat Category) []string {
	switch cat {
	case CategoryStdlib:
		return d.Stdlib
	case CategoryBuiltin:
		return d.Builtin
	case CategorySitePackages:
		return d.SitePackages
	case CategoryUserSitePackages:
		return d.UserSitePackages
	default:
		return nil
	}
}

// Contains reports whether name appears in the given bucket.
func (d *ImportDump) Contains(cat Category, name string) bool {
	return slices.Contains(d.Bucket(cat), name)
}

// Render serializes the dump as indented JSON with the four keys in fixed
// order. Nil buckets render as empty arrays, never null.
func (d *ImportDump) Render() ([]byte, error) {
	out := *d
	if out.Stdlib == nil {
		out.Stdlib = []string{}
	}
	if out.Builtin == nil {
		out.Builtin = []string{}
	}
	if out.SitePackages == nil {
		out.SitePackages = []string{}
	}
	if out.UserSitePackages == nil {
		out.UserSitePackages = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseImportDump parses a previously rendered report.
func ParseImportDump(data []byte) (*ImportDump, error) {
	var d ImportDump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
