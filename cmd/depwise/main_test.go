package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zbowling/depwise/internal/app"
	"github.com/zbowling/depwise/internal/core/domain"
	"github.com/zbowling/depwise/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(application *app.App, log *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mocks.NewMockInterpreter(ctrl),
		mocks.NewMockPackageScanner(ctrl),
		mocks.NewMockDependencyParser(ctrl),
		mocks.NewMockImportScanner(ctrl),
		mocks.NewMockPackageInspector(ctrl),
		mockLogger,
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, newProvider(application, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error
// when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockInterp := mocks.NewMockInterpreter(ctrl)
	mockInterp.EXPECT().StdlibModuleNames(gomock.Any()).Return(nil, domain.ErrInterpreterQueryFailed)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	application := app.New(
		mockInterp,
		mocks.NewMockPackageScanner(ctrl),
		mocks.NewMockDependencyParser(ctrl),
		mocks.NewMockImportScanner(ctrl),
		mocks.NewMockPackageInspector(ctrl),
		mockLogger,
	)

	exitCode := run(context.Background(), []string{"dump"}, new(bytes.Buffer), newProvider(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_CheckFailureExitsWithoutLogging verifies that a failed check
// sets the exit code without double logging the rendered verdict.
func TestRun_CheckFailureExitsWithoutLogging(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockParser := mocks.NewMockDependencyParser(ctrl)
	mockParser.EXPECT().Infer(".").Return("requirements.txt", nil)
	mockParser.EXPECT().ParseFile("requirements.txt").Return(nil, nil)

	mockImports := mocks.NewMockImportScanner(ctrl)
	mockImports.EXPECT().ScanProject(gomock.Any(), ".").Return([]domain.PythonImport{
		{Module: "numpy", File: "main.py", Line: 1},
	}, nil)
	mockImports.EXPECT().TopLevelModules(".").Return(nil, nil)

	mockInterp := mocks.NewMockInterpreter(ctrl)
	mockInterp.EXPECT().StdlibModuleNames(gomock.Any()).Return(nil, nil)
	mockInterp.EXPECT().BuiltinModuleNames(gomock.Any()).Return(nil, nil)
	mockInterp.EXPECT().SitePackageDirs(gomock.Any()).Return(nil, nil)
	mockInterp.EXPECT().UserSitePackageDirs(gomock.Any()).Return(nil, nil)

	mockScanner := mocks.NewMockPackageScanner(ctrl)
	mockScanner.EXPECT().Scan(gomock.Any()).Return(nil).Times(2)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	// No Error expectation: the verdict must not be logged.

	application := app.New(
		mockInterp,
		mockScanner,
		mockParser,
		mockImports,
		mocks.NewMockPackageInspector(ctrl),
		mockLogger,
	)

	exitCode := run(context.Background(), []string{"check"}, new(bytes.Buffer), newProvider(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}
