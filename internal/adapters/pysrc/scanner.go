package pysrc

import (
	"strings"

	"github.com/zbowling/depwise/internal/core/domain"
)

// Scanner implements ports.ImportScanner with a line-oriented pass over
// python source. It does not build a full AST; it tracks just enough
// block structure to tell module-scope imports from nested ones and to
// recognize try blocks whose except clauses swallow import failures.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanSource extracts every import statement from src. The name is used
// for location reporting only.
func (s *Scanner) ScanSource(name string, src []byte) []domain.PythonImport {
	p := &sourceParser{file: name, lines: strings.Split(string(src), "\n")}
	return p.parse()
}

// exception types whose handlers make an import optional.
var importFailureHandlers = []string{
	"ImportError",
	"ModuleNotFoundError",
	"Exception",
	"BaseException",
}

type frame struct {
	indent int

	// nested frames (def, class, if, loops) take their body out of
	// module scope. try frames do not.
	nested bool

	// guarded is set on try frames with an import failure handler.
	guarded bool
}

type sourceParser struct {
	file    string
	lines   []string
	stack   []frame
	str     string // open triple-quote delimiter, "" outside strings
	imports []domain.PythonImport
}

func (p *sourceParser) parse() []domain.PythonImport {
	for i := 0; i < len(p.lines); i++ {
		code := p.sanitize(p.lines[i])
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}

		indent := indentOf(p.lines[i])
		p.popTo(indent, trimmed)

		switch {
		case isKeyword(trimmed, "try"):
			p.stack = append(p.stack, frame{indent: indent, guarded: p.guardedTry(i, indent)})
		case startsBlock(trimmed):
			p.stack = append(p.stack, frame{indent: indent, nested: true})
		case isKeyword(trimmed, "import"):
			stmt, consumed := p.collectStatement(trimmed, i)
			p.addPlainImports(stmt, i+1)
			i += consumed
		case isKeyword(trimmed, "from"):
			stmt, consumed := p.collectStatement(trimmed, i)
			p.addFromImport(stmt, i+1)
			i += consumed
		}
	}
	return p.imports
}

// popTo closes blocks the current line has dedented out of. except, elif,
// else and finally clauses at a block's own indent continue that block.
func (p *sourceParser) popTo(indent int, trimmed string) {
	continuation := isKeyword(trimmed, "except") || isKeyword(trimmed, "elif") ||
		isKeyword(trimmed, "else") || isKeyword(trimmed, "finally")

	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.indent < indent {
			break
		}
		if top.indent == indent && continuation {
			break
		}
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// guardedTry looks ahead from a try header for except clauses at the same
// indent and reports whether any of them catches import failures.
func (p *sourceParser) guardedTry(start, indent int) bool {
	for i := start + 1; i < len(p.lines); i++ {
		trimmed := strings.TrimSpace(p.lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		li := indentOf(p.lines[i])
		if li > indent {
			continue
		}
		if li < indent {
			return false
		}
		switch {
		case isKeyword(trimmed, "except"):
			if handlesImportFailure(trimmed) {
				return true
			}
		case isKeyword(trimmed, "else"), isKeyword(trimmed, "finally"):
			// still inside the same try statement
		default:
			return false
		}
	}
	return false
}

func handlesImportFailure(clause string) bool {
	spec := strings.TrimSpace(strings.TrimPrefix(clause, "except"))
	spec = strings.TrimSuffix(spec, ":")
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "*" {
		// bare except catches everything
		return true
	}
	for _, name := range importFailureHandlers {
		if containsWord(spec, name) {
			return true
		}
	}
	return false
}

// collectStatement joins parenthesized and backslash continuations into a
// single logical line, returning the statement and the number of extra
// lines consumed.
func (p *sourceParser) collectStatement(first string, i int) (string, int) {
	stmt := first
	consumed := 0
	for i+consumed+1 < len(p.lines) {
		trimmed := strings.TrimSpace(stmt)
		open := strings.Count(stmt, "(") > strings.Count(stmt, ")")
		backslash := strings.HasSuffix(trimmed, "\\")
		if !open && !backslash {
			break
		}
		if backslash {
			stmt = strings.TrimSuffix(trimmed, "\\")
		}
		consumed++
		stmt += " " + strings.TrimSpace(p.sanitize(p.lines[i+consumed]))
	}
	return stmt, consumed
}

// addPlainImports handles "import a.b.c as abc, x.y as xy": one import
// per dotted name.
func (p *sourceParser) addPlainImports(stmt string, line int) {
	rest := strings.TrimSpace(strings.TrimPrefix(stmt, "import"))
	for _, part := range strings.Split(rest, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		imp := domain.PythonImport{
			Module:   fields[0],
			File:     p.file,
			Line:     line,
			TopLevel: p.topLevel(),
			Guarded:  p.guarded(),
		}
		if len(fields) >= 3 && fields[1] == "as" {
			imp.Alias = fields[2]
		}
		p.imports = append(p.imports, imp)
	}
}

// addFromImport handles "from [dots]module import name1, name2 as n2".
// Aliases apply per imported name and are dropped; only base names are
// recorded. Star imports record "*".
func (p *sourceParser) addFromImport(stmt string, line int) {
	head, tail, ok := strings.Cut(stmt, " import ")
	if !ok {
		return
	}
	spec := strings.TrimSpace(strings.TrimPrefix(head, "from"))

	level := 0
	for level < len(spec) && spec[level] == '.' {
		level++
	}
	module := spec[level:]

	flat := strings.NewReplacer("(", " ", ")", " ").Replace(tail)
	var names []string
	for _, part := range strings.Split(flat, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	if len(names) == 0 {
		return
	}

	p.imports = append(p.imports, domain.PythonImport{
		Module:        module,
		Names:         names,
		FromImport:    true,
		RelativeLevel: level,
		File:          p.file,
		Line:          line,
		TopLevel:      p.topLevel(),
		Guarded:       p.guarded(),
	})
}

func (p *sourceParser) topLevel() bool {
	for _, f := range p.stack {
		if f.nested {
			return false
		}
	}
	return true
}

func (p *sourceParser) guarded() bool {
	for _, f := range p.stack {
		if f.guarded {
			return true
		}
	}
	return false
}

// sanitize strips comments and string literal contents from a line,
// tracking triple-quoted strings across lines.
func (p *sourceParser) sanitize(line string) string {
	var out strings.Builder
	i := 0
	for i < len(line) {
		if p.str != "" {
			end := strings.Index(line[i:], p.str)
			if end < 0 {
				return out.String()
			}
			i += end + len(p.str)
			p.str = ""
			continue
		}
		switch c := line[i]; c {
		case '#':
			return out.String()
		case '\'', '"':
			delim := line[i : i+1]
			if strings.HasPrefix(line[i:], strings.Repeat(delim, 3)) {
				p.str = strings.Repeat(delim, 3)
				i += 3
				continue
			}
			end := closingQuote(line, i+1, c)
			if end < 0 {
				return out.String()
			}
			i = end + 1
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

func closingQuote(line string, from int, delim byte) int {
	for i := from; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case delim:
			return i
		}
	}
	return -1
}

func indentOf(line string) int {
	indent := 0
	for _, c := range line {
		switch c {
		case ' ':
			indent++
		case '\t':
			indent += 8
		default:
			return indent
		}
	}
	return indent
}

var blockKeywords = []string{"def", "class", "if", "elif", "else", "for", "while", "with", "match", "case"}

func startsBlock(trimmed string) bool {
	if strings.HasPrefix(trimmed, "async ") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "async"))
	}
	for _, kw := range blockKeywords {
		if isKeyword(trimmed, kw) {
			return true
		}
	}
	return false
}

// isKeyword reports whether trimmed starts with kw as a full word.
func isKeyword(trimmed, kw string) bool {
	if !strings.HasPrefix(trimmed, kw) {
		return false
	}
	if len(trimmed) == len(kw) {
		return true
	}
	switch trimmed[len(kw)] {
	case ' ', '\t', ':', '(':
		return true
	}
	return false
}

// containsWord reports whether name occurs in spec as a full identifier.
func containsWord(spec, name string) bool {
	for start := 0; ; {
		idx := strings.Index(spec[start:], name)
		if idx < 0 {
			return false
		}
		idx += start
		before := idx == 0 || !isIdentChar(spec[idx-1])
		afterIdx := idx + len(name)
		after := afterIdx == len(spec) || !isIdentChar(spec[afterIdx])
		if before && after {
			return true
		}
		start = idx + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
