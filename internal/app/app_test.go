package app_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zbowling/depwise/internal/app"
	"github.com/zbowling/depwise/internal/core/domain"
	"github.com/zbowling/depwise/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	interp    *mocks.MockInterpreter
	scanner   *mocks.MockPackageScanner
	parser    *mocks.MockDependencyParser
	imports   *mocks.MockImportScanner
	inspector *mocks.MockPackageInspector
	logger    *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, testMocks) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	m := testMocks{
		interp:    mocks.NewMockInterpreter(ctrl),
		scanner:   mocks.NewMockPackageScanner(ctrl),
		parser:    mocks.NewMockDependencyParser(ctrl),
		imports:   mocks.NewMockImportScanner(ctrl),
		inspector: mocks.NewMockPackageInspector(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(m.interp, m.scanner, m.parser, m.imports, m.inspector, m.logger)
	return a, m
}

func expectEnvironment(m testMocks) {
	m.interp.EXPECT().StdlibModuleNames(gomock.Any()).Return([]string{"json", "os", "sys"}, nil)
	m.interp.EXPECT().BuiltinModuleNames(gomock.Any()).Return([]string{"_thread", "sys"}, nil)
	m.interp.EXPECT().SitePackageDirs(gomock.Any()).Return([]string{"/py/site-packages"}, nil)
	m.interp.EXPECT().UserSitePackageDirs(gomock.Any()).Return([]string{"/home/u/site-packages"}, nil)
	m.scanner.EXPECT().Scan([]string{"/py/site-packages"}).Return([]string{"requests", "flask"})
	m.scanner.EXPECT().Scan([]string{"/home/u/site-packages"}).Return([]string{"requests"})
}

func TestBuildReport(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	report, err := a.BuildReport(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"json", "os", "sys"}, report.Stdlib)
	assert.Equal(t, []string{"_thread", "sys"}, report.Builtin)
	assert.Equal(t, []string{"requests", "flask"}, report.SitePackages, "scan order preserved")
	assert.Equal(t, []string{"requests"}, report.UserSitePackages)
}

func TestBuildReport_InterpreterFailure(t *testing.T) {
	a, m := newTestApp(t)
	m.interp.EXPECT().StdlibModuleNames(gomock.Any()).Return(nil, domain.ErrInterpreterQueryFailed)

	_, err := a.BuildReport(t.Context())
	assert.ErrorIs(t, err, domain.ErrInterpreterQueryFailed)
}

func TestDump(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	var buf bytes.Buffer
	require.NoError(t, a.Dump(t.Context(), app.DumpOptions{Out: &buf}))

	g := goldie.New(t)
	g.Assert(t, "dump_report", buf.Bytes())
}

func TestDump_Fingerprint(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	var buf bytes.Buffer
	require.NoError(t, a.Dump(t.Context(), app.DumpOptions{Fingerprint: true, Out: &buf}))

	out := buf.String()
	require.Len(t, out, 17, "16 hex chars and a newline")
	assert.Regexp(t, "^[0-9a-f]{16}\n$", out)
}

func TestCheck_AllDeclared(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	m.parser.EXPECT().Infer("proj").Return("proj/requirements.txt", nil)
	m.parser.EXPECT().ParseFile("proj/requirements.txt").Return([]domain.Dependency{
		{Kind: domain.DependencyPyPI, Name: "requests"},
	}, nil)
	m.imports.EXPECT().ScanProject(gomock.Any(), "proj").Return([]domain.PythonImport{
		{Module: "requests", File: "main.py", Line: 1},
		{Module: "os", File: "main.py", Line: 2},
	}, nil)
	m.imports.EXPECT().TopLevelModules("proj").Return([]string{"main"}, nil)

	var buf bytes.Buffer
	err := a.Check(t.Context(), "proj", app.CheckOptions{Out: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "all imports declared")
	assert.Contains(t, buf.String(), "used (1): requests")
}

func TestCheck_MissingImport(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	m.parser.EXPECT().Infer("proj").Return("proj/requirements.txt", nil)
	m.parser.EXPECT().ParseFile("proj/requirements.txt").Return([]domain.Dependency{
		{Kind: domain.DependencyPyPI, Name: "requests"},
	}, nil)
	m.imports.EXPECT().ScanProject(gomock.Any(), "proj").Return([]domain.PythonImport{
		{Module: "numpy", File: "main.py", Line: 3},
	}, nil)
	m.imports.EXPECT().TopLevelModules("proj").Return(nil, nil)

	var buf bytes.Buffer
	err := a.Check(t.Context(), "proj", app.CheckOptions{Out: &buf})
	assert.ErrorIs(t, err, domain.ErrCheckFailed)
	assert.Contains(t, buf.String(), "numpy (main.py:3)")
	assert.Contains(t, buf.String(), "never imported (1): requests")
}

func TestCheck_GuardedImportIsWarning(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	m.parser.EXPECT().Infer("proj").Return("proj/requirements.txt", nil)
	m.parser.EXPECT().ParseFile("proj/requirements.txt").Return(nil, nil)
	m.imports.EXPECT().ScanProject(gomock.Any(), "proj").Return([]domain.PythonImport{
		{Module: "torch", File: "opt.py", Line: 2, Guarded: true},
	}, nil)
	m.imports.EXPECT().TopLevelModules("proj").Return(nil, nil)

	var buf bytes.Buffer
	err := a.Check(t.Context(), "proj", app.CheckOptions{Out: &buf})
	require.NoError(t, err, "guarded imports do not fail the check")
	assert.Contains(t, buf.String(), "optional imports without declaration")
	assert.Contains(t, buf.String(), "torch (opt.py:2)")
}

func TestCheck_ExplicitEnvFile(t *testing.T) {
	a, m := newTestApp(t)
	expectEnvironment(m)

	m.parser.EXPECT().ParseFile("custom/pyproject.toml").Return(nil, nil)
	m.imports.EXPECT().ScanProject(gomock.Any(), "proj").Return(nil, nil)
	m.imports.EXPECT().TopLevelModules("proj").Return(nil, nil)

	var buf bytes.Buffer
	err := a.Check(t.Context(), "proj", app.CheckOptions{EnvFile: "custom/pyproject.toml", Out: &buf})
	require.NoError(t, err)
}

func TestCheck_NoEnvFile(t *testing.T) {
	a, m := newTestApp(t)
	m.parser.EXPECT().Infer("proj").Return("", domain.ErrNoDependencyFile)

	err := a.Check(t.Context(), "proj", app.CheckOptions{})
	assert.ErrorIs(t, err, domain.ErrNoDependencyFile)
}

func TestCheckPackage(t *testing.T) {
	a, m := newTestApp(t)
	m.interp.EXPECT().StdlibModuleNames(gomock.Any()).Return([]string{"os"}, nil)
	m.interp.EXPECT().BuiltinModuleNames(gomock.Any()).Return([]string{"sys"}, nil)
	m.inspector.EXPECT().Inspect("demo.whl").Return(&domain.PackageInfo{
		Name:    "demo",
		Version: "1.0.0",
		Requires: []domain.Dependency{
			{Kind: domain.DependencyPyPI, Name: "requests"},
		},
		TopLevel: []string{"demo"},
		Imports: []domain.PythonImport{
			{Module: "requests", File: "demo/__init__.py", Line: 1},
			{Module: "os", File: "demo/__init__.py", Line: 2},
			{Module: "demo.sub", File: "demo/api.py", Line: 1},
		},
	}, nil)

	var buf bytes.Buffer
	err := a.CheckPackage(t.Context(), "demo.whl", app.CheckPackageOptions{Out: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "used (1): requests")
}

func TestCheckPackage_UndeclaredImport(t *testing.T) {
	a, m := newTestApp(t)
	m.interp.EXPECT().StdlibModuleNames(gomock.Any()).Return([]string{"os"}, nil)
	m.interp.EXPECT().BuiltinModuleNames(gomock.Any()).Return([]string{"sys"}, nil)
	m.inspector.EXPECT().Inspect("demo.whl").Return(&domain.PackageInfo{
		Name:     "demo",
		Version:  "1.0.0",
		TopLevel: []string{"demo"},
		Imports: []domain.PythonImport{
			{Module: "numpy", File: "demo/core.py", Line: 4},
		},
	}, nil)

	var buf bytes.Buffer
	err := a.CheckPackage(t.Context(), "demo.whl", app.CheckPackageOptions{Out: &buf})
	assert.ErrorIs(t, err, domain.ErrCheckFailed)
	assert.Contains(t, buf.String(), "numpy (demo/core.py:4)")
}

func TestCheckPackage_OpenFailure(t *testing.T) {
	a, m := newTestApp(t)
	m.inspector.EXPECT().Inspect("broken.whl").Return(nil, domain.ErrPackageOpenFailed)

	err := a.CheckPackage(t.Context(), "broken.whl", app.CheckPackageOptions{})
	assert.ErrorIs(t, err, domain.ErrPackageOpenFailed)
}
