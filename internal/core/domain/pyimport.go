package domain

import "strings"

// PythonImport is a single import statement found in Python source.
type PythonImport struct {
	// Module is the dotted module path. Empty for bare relative imports
	// such as "from . import x".
	Module string

	// Names holds the imported names of a from-import, including "*".
	Names []string

	// FromImport is true for "from ... import ..." statements.
	FromImport bool

	// RelativeLevel counts the leading dots of a relative import.
	RelativeLevel int

	// Alias is the "as" name of a plain import, if any.
	Alias string

	// File and Line locate the statement in the scanned source.
	File string
	Line int

	// TopLevel is true when the statement sits at module scope rather
	// than inside a function, class or other block.
	TopLevel bool

	// Guarded is true when the statement sits inside a try block whose
	// except clauses catch import failures. Guarded imports are treated
	// as optional by the analysis.
	Guarded bool
}

// Relative reports whether the import is package-relative.
func (i PythonImport) Relative() bool {
	return i.RelativeLevel > 0
}

// TopLevelModule returns the first segment of the dotted module path.
// Relative imports have no top-level module and return "".
func (i PythonImport) TopLevelModule() string {
	if i.Relative() || i.Module == "" {
		return ""
	}
	head, _, _ := strings.Cut(i.Module, ".")
	return head
}
