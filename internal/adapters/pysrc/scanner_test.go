package pysrc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zbowling/depwise/internal/adapters/pysrc"
	"github.com/zbowling/depwise/internal/core/domain"
)

func scan(t *testing.T, src string) []domain.PythonImport {
	t.Helper()
	return pysrc.NewScanner().ScanSource("test.py", []byte(src))
}

func TestScanSource_SimpleImports(t *testing.T) {
	imports := scan(t, `
import os
import sys as system
from datetime import datetime
from typing import List, Dict as Dictionary
`)

	require.Len(t, imports, 4)

	assert.Equal(t, "os", imports[0].Module)
	assert.False(t, imports[0].FromImport)
	assert.Empty(t, imports[0].Names)
	assert.Equal(t, 2, imports[0].Line)
	assert.True(t, imports[0].TopLevel)

	assert.Equal(t, "sys", imports[1].Module)
	assert.Equal(t, "system", imports[1].Alias)

	assert.Equal(t, "datetime", imports[2].Module)
	assert.True(t, imports[2].FromImport)
	assert.Equal(t, []string{"datetime"}, imports[2].Names)

	assert.Equal(t, "typing", imports[3].Module)
	assert.Equal(t, []string{"List", "Dict"}, imports[3].Names)
}

func TestScanSource_DottedAsNames(t *testing.T) {
	imports := scan(t, `
import a.b.c as abc, x.y.z as xyz
import one.two, three.four as tf
`)

	require.Len(t, imports, 4)
	assert.Equal(t, "a.b.c", imports[0].Module)
	assert.Equal(t, "abc", imports[0].Alias)
	assert.Equal(t, "x.y.z", imports[1].Module)
	assert.Equal(t, "xyz", imports[1].Alias)
	assert.Equal(t, "one.two", imports[2].Module)
	assert.Empty(t, imports[2].Alias)
	assert.Equal(t, "three.four", imports[3].Module)
	assert.Equal(t, "tf", imports[3].Alias)

	assert.Equal(t, "a", imports[0].TopLevelModule())
	assert.Equal(t, "one", imports[2].TopLevelModule())
}

func TestScanSource_FromImportTargets(t *testing.T) {
	imports := scan(t, `
from module import name1, name2 as alias2
from module import (name1, name2 as alias2)
from module import (name1, name2 as alias2,)
from module import *
`)

	require.Len(t, imports, 4)
	for _, imp := range imports[:3] {
		assert.Equal(t, "module", imp.Module)
		assert.True(t, imp.FromImport)
		assert.Equal(t, []string{"name1", "name2"}, imp.Names)
	}
	assert.Equal(t, []string{"*"}, imports[3].Names)
}

func TestScanSource_ParenthesizedMultiline(t *testing.T) {
	imports := scan(t, `
from package.subpackage import (
    Class1,
    Class2 as Alias2,
    Class3
)
import very.long.module.name as short_name
`)

	require.Len(t, imports, 2)
	assert.Equal(t, "package.subpackage", imports[0].Module)
	assert.Equal(t, []string{"Class1", "Class2", "Class3"}, imports[0].Names)
	assert.Equal(t, 2, imports[0].Line)
	assert.Equal(t, "very.long.module.name", imports[1].Module)
	assert.Equal(t, "short_name", imports[1].Alias)
	assert.Equal(t, 7, imports[1].Line)
}

func TestScanSource_RelativeImports(t *testing.T) {
	imports := scan(t, `
from . import name
from .. import name
from ... import name
from .module import name
from ..module import name
from ...module import name
`)

	require.Len(t, imports, 6)
	for i, want := range []struct {
		module string
		level  int
	}{
		{"", 1}, {"", 2}, {"", 3},
		{"module", 1}, {"module", 2}, {"module", 3},
	} {
		assert.Equal(t, want.module, imports[i].Module, "import %d", i)
		assert.Equal(t, want.level, imports[i].RelativeLevel, "import %d", i)
		assert.True(t, imports[i].Relative(), "import %d", i)
		assert.Empty(t, imports[i].TopLevelModule(), "import %d", i)
	}
}

func TestScanSource_NestedImports(t *testing.T) {
	imports := scan(t, `
import os

def main():
    import json

class Thing:
    def __init__(self):
        import csv

if True:
    import io

import re
`)

	require.Len(t, imports, 5)
	assert.True(t, imports[0].TopLevel)
	assert.False(t, imports[1].TopLevel, "function body")
	assert.False(t, imports[2].TopLevel, "method body")
	assert.False(t, imports[3].TopLevel, "if body")
	assert.True(t, imports[4].TopLevel, "back at module scope")
}

func TestScanSource_GuardedImports(t *testing.T) {
	imports := scan(t, `
try:
    import optional_package
except ImportError:
    print("optional_package not found")

try:
    import another_optional
except Exception:
    pass

try:
    import third_optional
except:
    pass

try:
    import missing_module
except (ImportError, ModuleNotFoundError) as exc:
    missing_module = None

try:
    import unguarded
except ValueError:
    pass

def function():
    try:
        import nested_optional
    except ImportError:
        pass
`)

	require.Len(t, imports, 6)

	assert.Equal(t, "optional_package", imports[0].Module)
	assert.True(t, imports[0].Guarded)
	assert.True(t, imports[0].TopLevel, "try does not leave module scope")

	assert.True(t, imports[1].Guarded, "generic Exception handler")
	assert.True(t, imports[2].Guarded, "bare except")
	assert.True(t, imports[3].Guarded, "tuple of exception types")

	assert.Equal(t, "unguarded", imports[4].Module)
	assert.False(t, imports[4].Guarded, "ValueError handler does not guard imports")

	assert.Equal(t, "nested_optional", imports[5].Module)
	assert.True(t, imports[5].Guarded)
	assert.False(t, imports[5].TopLevel)
}

func TestScanSource_GuardedFallbackInHandler(t *testing.T) {
	imports := scan(t, `
try:
    import ujson as json
except ImportError:
    import json
`)

	require.Len(t, imports, 2)
	assert.Equal(t, "ujson", imports[0].Module)
	assert.True(t, imports[0].Guarded)
	assert.Equal(t, "json", imports[1].Module)
	assert.True(t, imports[1].Guarded, "fallback import shares the guard")
}

func TestScanSource_IgnoresStringsAndComments(t *testing.T) {
	imports := scan(t, `
# import commented_out
doc = """
import inside_docstring
"""
msg = "import inside_string"
import real_module  # trailing comment
`)

	require.Len(t, imports, 1)
	assert.Equal(t, "real_module", imports[0].Module)
}

func TestScanSource_BackslashContinuation(t *testing.T) {
	imports := scan(t, `
from module import name1, \
    name2
`)

	require.Len(t, imports, 1)
	assert.Equal(t, []string{"name1", "name2"}, imports[0].Names)
}
