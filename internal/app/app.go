// Package app implements the application layer for depwise.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/zbowling/depwise/internal/core/domain"
	"github.com/zbowling/depwise/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	interp    ports.Interpreter
	scanner   ports.PackageScanner
	parser    ports.DependencyParser
	imports   ports.ImportScanner
	inspector ports.PackageInspector
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	interp ports.Interpreter,
	scanner ports.PackageScanner,
	parser ports.DependencyParser,
	imports ports.ImportScanner,
	inspector ports.PackageInspector,
	log ports.Logger,
) *App {
	return &App{
		interp:    interp,
		scanner:   scanner,
		parser:    parser,
		imports:   imports,
		inspector: inspector,
		logger:    log,
	}
}

// BuildReport inspects the python environment and fills all four buckets
// of the import dump: stdlib and builtin from the interpreter registries,
// the site-packages buckets from a directory scan of the interpreter's
// search paths.
func (a *App) BuildReport(ctx context.Context) (*domain.ImportDump, error) {
	dump := domain.NewImportDump()

	stdlib, err := a.interp.StdlibModuleNames(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read standard library modules")
	}
	dump.Append(domain.CategoryStdlib, stdlib...)

	builtin, err := a.interp.BuiltinModuleNames(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read builtin modules")
	}
	dump.Append(domain.CategoryBuiltin, builtin...)

	siteDirs, err := a.interp.SitePackageDirs(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read site-packages directories")
	}
	dump.Append(domain.CategorySitePackages, a.scanner.Scan(siteDirs)...)

	userDirs, err := a.interp.UserSitePackageDirs(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read user site-packages directories")
	}
	dump.Append(domain.CategoryUserSitePackages, a.scanner.Scan(userDirs)...)

	return dump, nil
}

// DumpOptions configuration for the Dump method.
type DumpOptions struct {
	// Fingerprint prints the short environment identity instead of the
	// full report.
	Fingerprint bool

	// Out defaults to stdout.
	Out io.Writer
}

// Dump writes the environment report as indented JSON.
func (a *App) Dump(ctx context.Context, opts DumpOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	report, err := a.BuildReport(ctx)
	if err != nil {
		return err
	}

	if opts.Fingerprint {
		_, err = fmt.Fprintln(out, domain.Fingerprint(report))
		return err
	}

	data, err := report.Render()
	if err != nil {
		return zerr.Wrap(err, "failed to render environment report")
	}
	_, err = out.Write(data)
	return err
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// EnvFile is an explicitly chosen environment file. When empty, the
	// file is inferred from the project directory.
	EnvFile string

	// Out defaults to stdout.
	Out io.Writer
}

// Check compares the imports of the project at dir against its declared
// dependencies. It returns domain.ErrCheckFailed when undeclared imports
// are found.
func (a *App) Check(ctx context.Context, dir string, opts CheckOptions) error {
	envFile := opts.EnvFile
	if envFile == "" {
		inferred, err := a.parser.Infer(dir)
		if err != nil {
			return err
		}
		envFile = inferred
	}
	a.logger.Info("checking against " + envFile)

	declared, err := a.parser.ParseFile(envFile)
	if err != nil {
		return err
	}

	imports, err := a.imports.ScanProject(ctx, dir)
	if err != nil {
		return err
	}

	locals, err := a.imports.TopLevelModules(dir)
	if err != nil {
		return err
	}

	report, err := a.BuildReport(ctx)
	if err != nil {
		return err
	}

	analysis := domain.Analyze(domain.AnalysisInput{
		Declared:     declared,
		Imports:      imports,
		Environment:  report,
		LocalModules: toSet(locals),
	})

	return a.finish(analysis, opts.Out)
}

// CheckPackageOptions configuration for the CheckPackage method.
type CheckPackageOptions struct {
	// Out defaults to stdout.
	Out io.Writer
}

// CheckPackage compares the imports bundled in a wheel against its
// Requires-Dist declarations. The installed environment is not consulted;
// only the interpreter's stdlib and builtin registries classify imports
// as non-third-party.
func (a *App) CheckPackage(ctx context.Context, path string, opts CheckPackageOptions) error {
	info, err := a.inspector.Inspect(path)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("checking %s %s", info.Name, info.Version))

	env := domain.NewImportDump()

	stdlib, err := a.interp.StdlibModuleNames(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to read standard library modules")
	}
	env.Append(domain.CategoryStdlib, stdlib...)

	builtin, err := a.interp.BuiltinModuleNames(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to read builtin modules")
	}
	env.Append(domain.CategoryBuiltin, builtin...)

	analysis := domain.Analyze(domain.AnalysisInput{
		Declared:     info.Requires,
		Imports:      info.Imports,
		Environment:  env,
		LocalModules: toSet(info.TopLevel),
	})

	return a.finish(analysis, opts.Out)
}

// finish renders the analysis and converts missing imports into the
// check failure sentinel.
func (a *App) finish(analysis *domain.Analysis, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	renderAnalysis(out, analysis)

	if !analysis.OK() {
		return zerr.With(domain.ErrCheckFailed, "missing", len(analysis.Missing))
	}
	return nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
